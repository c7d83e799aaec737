package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/unowned-ai/mindmirror/pkg/db"
	"github.com/unowned-ai/mindmirror/pkg/journal"
	"github.com/unowned-ai/mindmirror/pkg/logger"
)

const (
	ScorerHash   = "hash"
	ScorerRandom = "random"
)

// Config holds runtime settings. Environment variables use the MINDMIRROR_
// prefix, e.g. MINDMIRROR_DB_PATH or MINDMIRROR_LOG_LEVEL; command-line flags
// override them.
type Config struct {
	DBPath   string `envconfig:"DB_PATH" default:""`
	WAL      bool   `envconfig:"WAL" default:"false"`
	SyncMode string `envconfig:"SYNC" default:"FULL"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Theme scoring: "hash" is deterministic, "random" samples with Seed.
	Scorer string `envconfig:"SCORER" default:"hash"`
	Seed   int64  `envconfig:"SEED" default:"1"`

	// Optional YAML file whose colors are laid over the default palette.
	PaletteFile string `envconfig:"PALETTE_FILE" default:""`

	OTelEndpoint string `envconfig:"OTEL_ENDPOINT" default:""`
	OTelInsecure bool   `envconfig:"OTEL_INSECURE" default:"true"`
}

// New reads the configuration from the environment.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MINDMIRROR", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// Validate rejects unknown scorer, sync mode or log level values.
func (c *Config) Validate() error {
	switch c.Scorer {
	case ScorerHash, ScorerRandom:
	default:
		return fmt.Errorf("unsupported SCORER: %s (want %s or %s)", c.Scorer, ScorerHash, ScorerRandom)
	}
	if !db.ValidSyncMode(c.SyncMode) {
		return fmt.Errorf("unsupported SYNC: %s", c.SyncMode)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unsupported LOG_LEVEL: %s", c.LogLevel)
	}
	return nil
}

// ThemeScorer returns the scorer selected by the configuration.
func (c *Config) ThemeScorer() journal.ThemeScorer {
	if strings.EqualFold(c.Scorer, ScorerRandom) {
		return journal.NewRandomScorer(c.Seed)
	}
	return journal.HashScorer{}
}

// Palette returns the default palette, merged with PaletteFile when set.
func (c *Config) Palette() (journal.Palette, error) {
	palette := journal.DefaultPalette()
	if c.PaletteFile == "" {
		return palette, nil
	}

	f, err := os.Open(c.PaletteFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette file '%s': %w", c.PaletteFile, err)
	}
	defer f.Close()

	custom, err := journal.LoadPalette(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load palette file '%s': %w", c.PaletteFile, err)
	}
	return palette.Merge(custom), nil
}
