package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindmirror/pkg/config"
	pkgdb "github.com/unowned-ai/mindmirror/pkg/db"
	"github.com/unowned-ai/mindmirror/pkg/journal"
	"github.com/unowned-ai/mindmirror/pkg/logger"
	"github.com/unowned-ai/mindmirror/pkg/session"
	"github.com/unowned-ai/mindmirror/pkg/telemetry"
	"github.com/unowned-ai/mindmirror/pkg/utils"
)

const shutdownTimeout = 5 * time.Second

// app bundles what a command needs: a hydrated session over the archive.
type app struct {
	cfg     *config.Config
	db      *sql.DB
	dbPath  string
	sess    *session.Session
	metrics *telemetry.Metrics
	log     zerolog.Logger
}

// loadConfig reads MINDMIRROR_* variables and applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("wal") {
		cfg.WAL, _ = flags.GetBool("wal")
	}
	if flags.Changed("sync") {
		cfg.SyncMode, _ = flags.GetString("sync")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("scorer") {
		cfg.Scorer, _ = flags.GetString("scorer")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("palette") {
		cfg.PaletteFile, _ = flags.GetString("palette")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogger installs the stderr logger as the zerolog global, which the
// db package logs through, and returns it.
func setupLogger(cfg *config.Config) zerolog.Logger {
	level, _ := logger.ParseLevel(cfg.LogLevel)
	l := logger.New("mindmirror", level, os.Stderr)
	log.Logger = l
	return l
}

// openApp opens and upgrades the archive, then replays it into a new session.
func openApp(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	l := setupLogger(cfg)

	path, err := utils.ResolveAndEnsureDBPath(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	dbConn, err := pkgdb.OpenDBConnection(path, cfg.WAL, cfg.SyncMode)
	if err != nil {
		return nil, err
	}
	if err := pkgdb.UpgradeDB(dbConn, path, pkgdb.TargetSchemaVersion); err != nil {
		dbConn.Close()
		return nil, err
	}

	palette, err := cfg.Palette()
	if err != nil {
		dbConn.Close()
		return nil, err
	}

	metrics, err := telemetry.New(ctx, telemetry.Config{Endpoint: cfg.OTelEndpoint, Insecure: cfg.OTelInsecure})
	if err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to set up telemetry: %w", err)
	}

	sess := session.New(
		session.WithArchive(dbConn),
		session.WithMetrics(metrics),
		session.WithLogger(l),
		session.WithPalette(palette),
		session.WithBuilder(journal.NewBuilder(journal.WithScorer(cfg.ThemeScorer()))),
	)

	if _, err := sess.Hydrate(ctx); err != nil {
		_ = metrics.Shutdown(ctx)
		dbConn.Close()
		return nil, err
	}
	return &app{cfg: cfg, db: dbConn, dbPath: path, sess: sess, metrics: metrics, log: l}, nil
}

// Close flushes metrics and closes the archive.
func (a *app) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.metrics.Shutdown(ctx); err != nil {
		a.log.Warn().Err(err).Msg("metrics shutdown failed")
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn().Err(err).Msg("closing archive failed")
	}
}
