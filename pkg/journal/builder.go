package journal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinIntensity = 1
	MaxIntensity = 10

	// PatternRecognition is the distortion type attached when the analyzer returns insights.
	PatternRecognition = "pattern recognition"
	patternDescription = "AI-detected thought patterns"
)

// IDGenerator issues entry ids that are unique for the lifetime of the process.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues UUIDv7 ids. They embed a millisecond timestamp plus a
// monotonic sequence, so ids created later sort after earlier ones.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		return uuid.NewString()
	}
	return id.String()
}

// Builder turns raw text and an analysis into an Entry. It never touches a store.
type Builder struct {
	ids    IDGenerator
	scorer ThemeScorer
	now    func() time.Time
}

type BuilderOption func(*Builder)

// WithIDGenerator replaces the default UUIDv7 generator.
func WithIDGenerator(g IDGenerator) BuilderOption {
	return func(b *Builder) { b.ids = g }
}

// WithScorer replaces the default HashScorer.
func WithScorer(s ThemeScorer) BuilderOption {
	return func(b *Builder) { b.scorer = s }
}

// WithClock sets the source of entry dates.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		ids:    UUIDGenerator{},
		scorer: HashScorer{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Validate checks the analysis has a primary emotion and an in-range sentiment.
func (a AnalysisResult) Validate() error {
	if len(a.Emotions) == 0 || strings.TrimSpace(a.Emotions[0]) == "" {
		return fmt.Errorf("%w: analysis has no primary emotion", ErrInvalidInput)
	}
	if math.IsNaN(a.Sentiment) || a.Sentiment < -1 || a.Sentiment > 1 {
		return fmt.Errorf("%w: sentiment %v outside [-1, 1]", ErrInvalidInput, a.Sentiment)
	}
	return nil
}

// Build creates a new entry from rawText and the analyzer's result.
func (b *Builder) Build(rawText string, analysis AnalysisResult) (Entry, error) {
	if strings.TrimSpace(rawText) == "" {
		return Entry{}, fmt.Errorf("%w: entry text is empty", ErrInvalidInput)
	}
	if err := analysis.Validate(); err != nil {
		return Entry{}, err
	}

	emotions := EmotionAnalysis{
		Primary:   analysis.Emotions[0],
		Intensity: IntensityFromSentiment(analysis.Sentiment),
		Valence:   ValenceFromSentiment(analysis.Sentiment),
	}
	if len(analysis.Emotions) > 1 {
		emotions.Secondary = analysis.Emotions[1]
	}

	themes := make([]ThemeAnalysis, 0, len(analysis.Themes))
	for _, label := range analysis.Themes {
		score := b.scorer.ScoreTheme(label)
		themes = append(themes, ThemeAnalysis{
			Name:        label,
			Weight:      score.Weight,
			Occurrences: score.Occurrences,
		})
	}

	entry := Entry{
		ID:       b.ids.NewID(),
		Text:     rawText,
		Date:     b.now(),
		Emotions: emotions,
		Themes:   themes,
	}

	if analysis.Insights != "" {
		entry.Distortions = []CognitiveDistortion{{
			Type:        PatternRecognition,
			Description: patternDescription,
			Examples:    []string{analysis.Insights},
		}}
	}

	return entry, nil
}

// IntensityFromSentiment scales sentiment to 1..10. Raw multiplication gives 0
// for neutral and negative scores, so the result is clamped up to 1.
func IntensityFromSentiment(sentiment float64) int {
	intensity := int(math.Round(sentiment * 10))
	if intensity < MinIntensity {
		return MinIntensity
	}
	if intensity > MaxIntensity {
		return MaxIntensity
	}
	return intensity
}
