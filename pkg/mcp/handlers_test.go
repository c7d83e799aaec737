package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unowned-ai/mindmirror/pkg/journal"
	"github.com/unowned-ai/mindmirror/pkg/session"
)

func sampleSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New(session.WithClock(func() time.Time {
		return time.Date(2023, 5, 16, 12, 0, 0, 0, time.UTC)
	}))
	entries := journal.SampleEntries()
	for i := len(entries) - 1; i >= 0; i-- {
		require.NoError(t, sess.Import(context.Background(), entries[i]))
	}
	return sess
}

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]interface{}) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text, res.IsError
}

func TestPing(t *testing.T) {
	text, isErr := call(t, pingHandler, nil)
	assert.False(t, isErr)
	assert.Equal(t, "pong_mindmirror", text)
}

func TestRecordEntry(t *testing.T) {
	sess := session.New()
	text, isErr := call(t, recordEntryHandler(sess), map[string]interface{}{
		"text":      "Finished the draft early.",
		"emotions":  "pride, relief",
		"sentiment": 0.64,
		"themes":    "work, accomplishment",
		"insights":  "Momentum builds on small wins",
	})
	require.False(t, isErr, text)

	var entry journal.Entry
	require.NoError(t, json.Unmarshal([]byte(text), &entry))
	assert.Equal(t, "pride", entry.Emotions.Primary)
	assert.Equal(t, "relief", entry.Emotions.Secondary)
	assert.Equal(t, 6, entry.Emotions.Intensity)
	assert.Equal(t, journal.ValencePositive, entry.Emotions.Valence)
	require.Len(t, entry.Themes, 2)
	assert.Equal(t, "work", entry.Themes[0].Name)
	require.Len(t, entry.Distortions, 1)
	assert.Equal(t, []string{"Momentum builds on small wins"}, entry.Distortions[0].Examples)

	assert.Equal(t, 1, sess.Len())
}

func TestRecordEntryRejectsInvalidInput(t *testing.T) {
	sess := session.New()
	h := recordEntryHandler(sess)

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing text", map[string]interface{}{"emotions": "joy", "sentiment": 0.5}},
		{"blank text", map[string]interface{}{"text": "   ", "emotions": "joy", "sentiment": 0.5}},
		{"missing sentiment", map[string]interface{}{"text": "x", "emotions": "joy"}},
		{"no emotions", map[string]interface{}{"text": "x", "emotions": " , ", "sentiment": 0.5}},
		{"sentiment out of range", map[string]interface{}{"text": "x", "emotions": "joy", "sentiment": 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, isErr := call(t, h, tt.args)
			assert.True(t, isErr)
		})
	}
	assert.Equal(t, 0, sess.Len())
}

func TestListEntries(t *testing.T) {
	sess := sampleSession(t)
	h := listEntriesHandler(sess)

	text, isErr := call(t, h, map[string]interface{}{})
	require.False(t, isErr)
	var all []journal.Entry
	require.NoError(t, json.Unmarshal([]byte(text), &all))
	require.Len(t, all, 3)
	assert.Equal(t, "sample-1", all[0].ID)

	text, _ = call(t, h, map[string]interface{}{"emotion": "contentment"})
	var filtered []journal.Entry
	require.NoError(t, json.Unmarshal([]byte(text), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "sample-2", filtered[0].ID)

	text, _ = call(t, h, map[string]interface{}{"limit": float64(2)})
	var limited []journal.Entry
	require.NoError(t, json.Unmarshal([]byte(text), &limited))
	assert.Len(t, limited, 2)

	text, isErr = call(t, h, map[string]interface{}{"emotion": "Anxiety"})
	assert.False(t, isErr)
	assert.Equal(t, "[]", text)

	_, isErr = call(t, h, map[string]interface{}{"range": "fortnight"})
	assert.True(t, isErr)
}

func TestTopThemes(t *testing.T) {
	sess := sampleSession(t)
	text, isErr := call(t, topThemesHandler(sess), map[string]interface{}{"n": float64(2)})
	require.False(t, isErr)

	var themes []journal.ThemeAnalysis
	require.NoError(t, json.Unmarshal([]byte(text), &themes))
	require.Len(t, themes, 2)
	assert.Equal(t, "work stress", themes[0].Name)
	assert.Equal(t, "fear of failure", themes[1].Name)
}

func TestEmotionSummary(t *testing.T) {
	sess := sampleSession(t)
	text, isErr := call(t, emotionSummaryHandler(sess), map[string]interface{}{})
	require.False(t, isErr)

	var got emotionSummary
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, 3, got.TotalEntries)
	assert.Len(t, got.Emotions, 3)
}

func TestColorForLabel(t *testing.T) {
	sess := sampleSession(t)
	h := colorForLabelHandler(sess)

	text, isErr := call(t, h, map[string]interface{}{"label": "Anxiety"})
	assert.False(t, isErr)
	assert.Equal(t, "#FF6B81", text)

	text, _ = call(t, h, map[string]interface{}{"label": "wistful"})
	assert.Equal(t, journal.HashColor("wistful"), text)

	_, isErr = call(t, h, map[string]interface{}{})
	assert.True(t, isErr)
}

func TestRegisterAll(t *testing.T) {
	srv := NewMindMirrorMCPServer(session.New())
	srv.RegisterAll()
	assert.NotNil(t, srv.MCPRawServer())
	assert.Len(t, ToolNames, 6)
}
