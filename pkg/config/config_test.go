package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "FULL", cfg.SyncMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ScorerHash, cfg.Scorer)
	assert.False(t, cfg.WAL)
	require.NoError(t, cfg.Validate())
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("MINDMIRROR_DB_PATH", "/tmp/mm.db")
	t.Setenv("MINDMIRROR_WAL", "true")
	t.Setenv("MINDMIRROR_SCORER", "random")
	t.Setenv("MINDMIRROR_SEED", "99")
	t.Setenv("MINDMIRROR_LOG_LEVEL", "debug")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mm.db", cfg.DBPath)
	assert.True(t, cfg.WAL)
	assert.Equal(t, int64(99), cfg.Seed)
	require.NoError(t, cfg.Validate())

	_, ok := cfg.ThemeScorer().(*journal.RandomScorer)
	assert.True(t, ok)
}

func TestValidate(t *testing.T) {
	base := Config{Scorer: ScorerHash, SyncMode: "NORMAL", LogLevel: "warn"}
	require.NoError(t, base.Validate())

	bad := base
	bad.Scorer = "llm"
	assert.Error(t, bad.Validate())

	bad = base
	bad.SyncMode = "sometimes"
	assert.Error(t, bad.Validate())

	bad = base
	bad.LogLevel = "chatty"
	assert.Error(t, bad.Validate())
}

func TestPaletteFromFile(t *testing.T) {
	cfg := Config{}
	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, journal.DefaultPalette(), p)

	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  nostalgia: \"#abcdef\"\n  joy: \"#000000\"\n"), 0o644))

	cfg.PaletteFile = path
	p, err = cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", journal.ColorForLabel("Nostalgia", p, nil))
	assert.Equal(t, "#000000", journal.ColorForLabel("joy", p, nil))
	assert.Equal(t, "#FF6B81", journal.ColorForLabel("anxiety", p, nil))

	cfg.PaletteFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.Palette()
	assert.Error(t, err)
}
