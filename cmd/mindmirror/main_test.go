package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

var initOnce sync.Once

func execute(t *testing.T, args ...string) string {
	t.Helper()
	initOnce.Do(initCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()), out.String())
	return out.String()
}

func TestCommandsAgainstArchive(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mm.db")

	out := execute(t, "seed", "--db", dbPath)
	assert.Contains(t, out, "Seeded 3 sample entries (3 total).")

	out = execute(t, "seed", "--db", dbPath)
	assert.Contains(t, out, "Seeded 0 sample entries (3 total).")

	var listed []journal.Entry
	require.NoError(t, json.Unmarshal([]byte(execute(t, "list", "--db", dbPath, "--json")), &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, "sample-1", listed[0].ID)
	assert.Equal(t, "sample-3", listed[2].ID)

	var recorded journal.Entry
	out = execute(t, "record", "--db", dbPath, "--json",
		"--text", "Shipped the release and went for a run.",
		"--emotions", "joy, relief", "--sentiment", "0.8", "--themes", "work")
	require.NoError(t, json.Unmarshal([]byte(out), &recorded))
	assert.Equal(t, "joy", recorded.Emotions.Primary)
	assert.Equal(t, 8, recorded.Emotions.Intensity)

	require.NoError(t, json.Unmarshal([]byte(execute(t, "list", "--db", dbPath, "--json", "--emotion", "joy")), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, recorded.ID, listed[0].ID)

	out = execute(t, "delete", "--db", dbPath, recorded.ID)
	assert.Contains(t, out, "deleted")

	var themes []journal.ThemeAnalysis
	require.NoError(t, json.Unmarshal([]byte(execute(t, "themes", "--db", dbPath, "--json", "--top", "1")), &themes))
	require.Len(t, themes, 1)
	assert.Equal(t, "work stress", themes[0].Name)

	var matched []map[string]any
	require.NoError(t, json.Unmarshal([]byte(execute(t, "search", "--db", dbPath, "--json", "--themes", "nature, dreams")), &matched))
	require.Len(t, matched, 2)
	assert.Equal(t, "sample-2", matched[0]["id"])

	out = execute(t, "summary", "--db", dbPath)
	assert.Contains(t, out, "Entries: 3")
	assert.Contains(t, out, "Average intensity: 7.0/10")

	assert.Equal(t, "#FF6B81", strings.TrimSpace(execute(t, "color", "Anxiety")))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList(" a, b,,c ,"))
	assert.Nil(t, splitList(""))
}

func TestDecodeAnalysis(t *testing.T) {
	analysis, err := decodeAnalysis(strings.NewReader(
		`{"emotions":["anxiety","self-doubt"],"sentiment":-0.6,"themes":["work stress"],"insights":"catastrophizing"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"anxiety", "self-doubt"}, analysis.Emotions)
	assert.Equal(t, -0.6, analysis.Sentiment)
	assert.Equal(t, "catastrophizing", analysis.Insights)

	_, err = decodeAnalysis(strings.NewReader(`{"mood":"meh"}`))
	assert.Error(t, err)
}

func TestPrintEntry(t *testing.T) {
	entry := journal.SampleEntries()[0]

	var short bytes.Buffer
	printEntry(&short, entry, true)
	assert.Contains(t, short.String(), "sample-1")
	assert.Contains(t, short.String(), "work stress, self-doubt, fear of failure")
	assert.Equal(t, 1, strings.Count(short.String(), "\n"))

	var full bytes.Buffer
	printEntry(&full, entry, false)
	assert.Contains(t, full.String(), "Emotions: anxiety, self-doubt (intensity 8/10, negative)")
	assert.Contains(t, full.String(), "catastrophizing")
}
