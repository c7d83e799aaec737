// Package session owns the state of one journaling session: the entry store,
// the builder that feeds it, the color palette and the optional archive.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/unowned-ai/mindmirror/pkg/archive"
	"github.com/unowned-ai/mindmirror/pkg/journal"
	"github.com/unowned-ai/mindmirror/pkg/telemetry"
)

type Session struct {
	store    *journal.Store
	builder  *journal.Builder
	palette  journal.Palette
	fallback journal.ColorFallback

	db      *sql.DB
	metrics *telemetry.Metrics
	log     zerolog.Logger
	now     func() time.Time
}

type Option func(*Session)

// WithArchive persists recorded entries to db and lets Hydrate replay them.
func WithArchive(db *sql.DB) Option {
	return func(s *Session) { s.db = db }
}

func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

func WithBuilder(b *journal.Builder) Option {
	return func(s *Session) { s.builder = b }
}

func WithPalette(p journal.Palette) Option {
	return func(s *Session) { s.palette = p }
}

func WithColorFallback(f journal.ColorFallback) Option {
	return func(s *Session) { s.fallback = f }
}

// WithClock sets the reference time for date-range filters.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(opts ...Option) *Session {
	s := &Session{
		store:    journal.NewStore(),
		builder:  journal.NewBuilder(),
		palette:  journal.DefaultPalette(),
		fallback: journal.HashColor,
		log:      zerolog.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate replays the archive into the store and returns how many entries it loaded.
func (s *Session) Hydrate(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, nil
	}

	entries, err := archive.ListEntries(ctx, s.db)
	if err != nil {
		return 0, fmt.Errorf("failed to load archive: %w", err)
	}
	for _, e := range entries {
		if err := s.store.Insert(e); err != nil {
			s.log.Error().Stack().Err(err).Str("entry_id", e.ID).Msg("archive replay hit a duplicate id")
			return 0, err
		}
	}

	s.log.Debug().Int("entries", len(entries)).Msg("session hydrated")
	return len(entries), nil
}

// Record builds an entry from text and the analyzer's result, archives it when
// an archive is configured, and inserts it at the front of the store.
func (s *Session) Record(ctx context.Context, text string, analysis journal.AnalysisResult) (journal.Entry, error) {
	entry, err := s.builder.Build(text, analysis)
	if err != nil {
		s.metrics.RecordRejection(ctx, "invalid_input")
		s.log.Warn().Err(err).Msg("entry rejected")
		return journal.Entry{}, err
	}

	if s.db != nil {
		if err := archive.SaveEntry(ctx, s.db, entry); err != nil {
			return journal.Entry{}, s.failRecord(ctx, entry, err)
		}
	}

	if err := s.store.Insert(entry); err != nil {
		if s.db != nil {
			if delErr := archive.DeleteEntry(ctx, s.db, entry.ID); delErr != nil {
				s.log.Error().Err(delErr).Str("entry_id", entry.ID).Msg("failed to roll back archived entry")
			}
		}
		return journal.Entry{}, s.failRecord(ctx, entry, err)
	}

	s.metrics.RecordEntry(ctx, entry)
	s.log.Info().
		Str("entry_id", entry.ID).
		Str("primary", entry.Emotions.Primary).
		Int("intensity", entry.Emotions.Intensity).
		Str("valence", string(entry.Emotions.Valence)).
		Int("themes", len(entry.Themes)).
		Bool("distortions", entry.HasDistortions()).
		Msg("entry recorded")
	return entry, nil
}

func (s *Session) failRecord(ctx context.Context, entry journal.Entry, err error) error {
	if errors.Is(err, journal.ErrDuplicateID) {
		s.metrics.RecordRejection(ctx, "duplicate_id")
		s.log.Error().Stack().Err(err).Str("entry_id", entry.ID).Msg("id generator produced a duplicate")
		return err
	}
	s.metrics.RecordRejection(ctx, "archive")
	return fmt.Errorf("failed to archive entry: %w", err)
}

// Import inserts a fully formed entry, such as a sample, archiving it first
// when an archive is configured.
func (s *Session) Import(ctx context.Context, entry journal.Entry) error {
	if s.db != nil {
		if err := archive.SaveEntry(ctx, s.db, entry); err != nil {
			return err
		}
	}
	return s.store.Insert(entry)
}

// Entries returns the session's entries, newest first.
func (s *Session) Entries() []journal.Entry {
	return s.store.List()
}

func (s *Session) Get(id string) (journal.Entry, bool) {
	return s.store.Get(id)
}

func (s *Session) Len() int {
	return s.store.Len()
}

// Filter applies f relative to the session clock.
func (s *Session) Filter(f journal.Filter) []journal.Entry {
	return f.Apply(s.store.List(), s.now())
}

// TopThemes ranks the themes of the entries matching f across the session.
func (s *Session) TopThemes(f journal.Filter, n int) []journal.ThemeAnalysis {
	return journal.TopThemesByWeight(journal.AggregateThemes(s.Filter(f)), n)
}

func (s *Session) EmotionCounts(f journal.Filter) []journal.LabelCount {
	return journal.EmotionCounts(s.Filter(f))
}

func (s *Session) Summary(f journal.Filter) journal.Summary {
	return journal.Summarize(s.Filter(f))
}

// Color resolves label against the session palette.
func (s *Session) Color(label string) string {
	return journal.ColorForLabel(label, s.palette, s.fallback)
}
