package journal

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sequenceIDs struct{ n int }

func (s *sequenceIDs) NewID() string {
	s.n++
	return fmt.Sprintf("entry-%d", s.n)
}

var fixedNow = time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)

func newTestBuilder() *Builder {
	return NewBuilder(
		WithIDGenerator(&sequenceIDs{}),
		WithScorer(FixedScorer{Weight: 7, Occurrences: 2}),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestBuildEntry(t *testing.T) {
	b := newTestBuilder()
	text := "  Walked by the river and felt lighter afterwards.  "

	entry, err := b.Build(text, AnalysisResult{
		Emotions:  []string{"contentment", "relief"},
		Sentiment: 0.75,
		Themes:    []string{"nature", "rest"},
	})
	require.NoError(t, err)

	assert.Equal(t, "entry-1", entry.ID)
	assert.Equal(t, text, entry.Text, "text must be kept verbatim")
	assert.Equal(t, fixedNow, entry.Date)
	assert.Equal(t, "contentment", entry.Emotions.Primary)
	assert.Equal(t, "relief", entry.Emotions.Secondary)
	assert.True(t, entry.Emotions.HasSecondary())
	assert.Equal(t, 8, entry.Emotions.Intensity)
	assert.Equal(t, ValencePositive, entry.Emotions.Valence)
	assert.Equal(t, []ThemeAnalysis{
		{Name: "nature", Weight: 7, Occurrences: 2},
		{Name: "rest", Weight: 7, Occurrences: 2},
	}, entry.Themes)
	assert.Nil(t, entry.Distortions)
	assert.False(t, entry.HasDistortions())
}

func TestBuildEntryWithoutSecondaryEmotion(t *testing.T) {
	entry, err := newTestBuilder().Build("text", AnalysisResult{Emotions: []string{"joy"}, Sentiment: 0.3})
	require.NoError(t, err)
	assert.False(t, entry.Emotions.HasSecondary())
	assert.Empty(t, entry.Themes)
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	valid := AnalysisResult{Emotions: []string{"joy"}, Sentiment: 0.5}

	cases := map[string]struct {
		text     string
		analysis AnalysisResult
	}{
		"empty text":         {"", valid},
		"whitespace text":    {" \n\t", valid},
		"no emotions":        {"text", AnalysisResult{Sentiment: 0.5}},
		"blank primary":      {"text", AnalysisResult{Emotions: []string{" "}, Sentiment: 0.5}},
		"sentiment too high": {"text", AnalysisResult{Emotions: []string{"joy"}, Sentiment: 1.5}},
		"sentiment too low":  {"text", AnalysisResult{Emotions: []string{"joy"}, Sentiment: -1.01}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newTestBuilder().Build(tc.text, tc.analysis)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
		})
	}
}

func TestIntensityClamp(t *testing.T) {
	cases := []struct {
		sentiment float64
		want      int
	}{
		{-1, 1},
		{-0.3, 1},
		{0, 1},
		{0.02, 1},
		{0.2, 2},
		{0.75, 8},
		{1, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IntensityFromSentiment(tc.sentiment), "sentiment %v", tc.sentiment)
	}
}

func TestIntensityIsMonotonicInSentiment(t *testing.T) {
	prev := IntensityFromSentiment(-1)
	for i := -100; i <= 100; i++ {
		s := float64(i) / 100
		got := IntensityFromSentiment(s)
		require.GreaterOrEqual(t, got, prev, "sentiment %v", s)
		require.GreaterOrEqual(t, got, MinIntensity)
		require.LessOrEqual(t, got, MaxIntensity)
		prev = got
	}
}

func TestValenceFromSentiment(t *testing.T) {
	assert.Equal(t, ValencePositive, ValenceFromSentiment(0.01))
	assert.Equal(t, ValencePositive, ValenceFromSentiment(1))
	assert.Equal(t, ValenceNegative, ValenceFromSentiment(-0.01))
	assert.Equal(t, ValenceNegative, ValenceFromSentiment(-1))
	assert.Equal(t, ValenceNeutral, ValenceFromSentiment(0))
}

func TestDistortionsFollowInsights(t *testing.T) {
	b := newTestBuilder()

	entry, err := b.Build("text", AnalysisResult{Emotions: []string{"fear"}, Sentiment: -0.4, Insights: ""})
	require.NoError(t, err)
	assert.Nil(t, entry.Distortions)

	entry, err = b.Build("text", AnalysisResult{Emotions: []string{"fear"}, Sentiment: -0.4, Insights: "X"})
	require.NoError(t, err)
	require.Len(t, entry.Distortions, 1)
	assert.Equal(t, PatternRecognition, entry.Distortions[0].Type)
	assert.Equal(t, []string{"X"}, entry.Distortions[0].Examples)
}

func TestDefaultBuilderIDsAreUniqueAndOrdered(t *testing.T) {
	b := NewBuilder()
	analysis := AnalysisResult{Emotions: []string{"joy"}, Sentiment: 0.1}

	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 500; i++ {
		e, err := b.Build("text", analysis)
		require.NoError(t, err)
		require.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
		require.Greater(t, e.ID, prev)
		prev = e.ID
	}
}
