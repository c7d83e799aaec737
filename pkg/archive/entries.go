package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
)

const (
	insertEntryStatement = `
	INSERT INTO entries (id, text, date, primary_emotion, secondary_emotion, intensity, valence, has_distortions)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	insertThemeStatement = `
	INSERT INTO entry_themes (entry_id, position, name, weight, occurrences)
	VALUES (?, ?, ?, ?, ?)
	`

	insertDistortionStatement = `
	INSERT INTO entry_distortions (entry_id, position, type, description, examples)
	VALUES (?, ?, ?, ?, ?)
	`

	getEntryStatement = `
	SELECT id, text, date, primary_emotion, secondary_emotion, intensity, valence, has_distortions
	FROM entries
	WHERE id = ?
	`

	listEntriesStatement = `
	SELECT id, text, date, primary_emotion, secondary_emotion, intensity, valence, has_distortions
	FROM entries
	ORDER BY rowid ASC
	`

	themesForEntryStatement = `
	SELECT entry_id, name, weight, occurrences
	FROM entry_themes
	WHERE entry_id = ?
	ORDER BY position ASC
	`

	allThemesStatement = `
	SELECT entry_id, name, weight, occurrences
	FROM entry_themes
	ORDER BY entry_id, position ASC
	`

	distortionsForEntryStatement = `
	SELECT entry_id, type, description, examples
	FROM entry_distortions
	WHERE entry_id = ?
	ORDER BY position ASC
	`

	allDistortionsStatement = `
	SELECT entry_id, type, description, examples
	FROM entry_distortions
	ORDER BY entry_id, position ASC
	`

	deleteEntryStatement = `
	DELETE FROM entries
	WHERE id = ?
	`

	countEntriesStatement = `SELECT COUNT(*) FROM entries`
)

// SaveEntry writes entry with its themes and distortions in one transaction.
// A second save of the same id fails with journal.ErrDuplicateID.
func SaveEntry(ctx context.Context, db *sql.DB, entry journal.Entry) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(
		ctx,
		insertEntryStatement,
		entry.ID,
		entry.Text,
		entry.Date.UTC().Format(time.RFC3339Nano),
		entry.Emotions.Primary,
		entry.Emotions.Secondary,
		entry.Emotions.Intensity,
		string(entry.Emotions.Valence),
		entry.HasDistortions(),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return fmt.Errorf("%w: %s", journal.ErrDuplicateID, entry.ID)
		}
		return fmt.Errorf("failed to insert entry %s: %w", entry.ID, err)
	}

	for i, theme := range entry.Themes {
		if _, err := tx.ExecContext(ctx, insertThemeStatement, entry.ID, i, theme.Name, theme.Weight, theme.Occurrences); err != nil {
			return fmt.Errorf("failed to insert theme '%s' for entry %s: %w", theme.Name, entry.ID, err)
		}
	}

	for i, d := range entry.Distortions {
		examples, err := json.Marshal(nonNil(d.Examples))
		if err != nil {
			return fmt.Errorf("failed to encode distortion examples: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertDistortionStatement, entry.ID, i, d.Type, d.Description, string(examples)); err != nil {
			return fmt.Errorf("failed to insert distortion '%s' for entry %s: %w", d.Type, entry.ID, err)
		}
	}

	return tx.Commit()
}

// GetEntry loads a single entry by id.
func GetEntry(ctx context.Context, db *sql.DB, id string) (journal.Entry, error) {
	entry, hasDistortions, err := scanEntry(db.QueryRowContext(ctx, getEntryStatement, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return journal.Entry{}, ErrEntryNotFound
		}
		return journal.Entry{}, err
	}

	themes, err := loadThemes(ctx, db, themesForEntryStatement, id)
	if err != nil {
		return journal.Entry{}, err
	}
	entry.Themes = themes[id]
	if entry.Themes == nil {
		entry.Themes = []journal.ThemeAnalysis{}
	}

	if hasDistortions {
		distortions, err := loadDistortions(ctx, db, distortionsForEntryStatement, id)
		if err != nil {
			return journal.Entry{}, err
		}
		entry.Distortions = distortions[id]
		if entry.Distortions == nil {
			entry.Distortions = []journal.CognitiveDistortion{}
		}
	}

	return entry, nil
}

// ListEntries returns every archived entry in the order it was saved, oldest
// first, so inserting them one by one into a journal.Store restores newest-first.
// TODO: Add pagination support
func ListEntries(ctx context.Context, db *sql.DB) ([]journal.Entry, error) {
	rows, err := db.QueryContext(ctx, listEntriesStatement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []journal.Entry
	var withDistortions []bool
	for rows.Next() {
		entry, hasDistortions, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		withDistortions = append(withDistortions, hasDistortions)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	themes, err := loadThemes(ctx, db, allThemesStatement)
	if err != nil {
		return nil, err
	}
	distortions, err := loadDistortions(ctx, db, allDistortionsStatement)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		id := entries[i].ID
		entries[i].Themes = themes[id]
		if entries[i].Themes == nil {
			entries[i].Themes = []journal.ThemeAnalysis{}
		}
		if withDistortions[i] {
			entries[i].Distortions = distortions[id]
			if entries[i].Distortions == nil {
				entries[i].Distortions = []journal.CognitiveDistortion{}
			}
		}
	}

	return entries, nil
}

// DeleteEntry removes an entry and, through the foreign keys, its themes and distortions.
func DeleteEntry(ctx context.Context, db *sql.DB, id string) error {
	res, err := db.ExecContext(ctx, deleteEntryStatement, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func CountEntries(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, countEntriesStatement).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (journal.Entry, bool, error) {
	var (
		entry          journal.Entry
		date           string
		valence        string
		hasDistortions bool
	)

	err := row.Scan(
		&entry.ID,
		&entry.Text,
		&date,
		&entry.Emotions.Primary,
		&entry.Emotions.Secondary,
		&entry.Emotions.Intensity,
		&valence,
		&hasDistortions,
	)
	if err != nil {
		return journal.Entry{}, false, err
	}

	entry.Date, err = time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return journal.Entry{}, false, fmt.Errorf("failed to parse date of entry %s: %w", entry.ID, err)
	}
	entry.Emotions.Valence = journal.Valence(valence)

	return entry, hasDistortions, nil
}

func loadThemes(ctx context.Context, db *sql.DB, query string, args ...any) (map[string][]journal.ThemeAnalysis, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query themes: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]journal.ThemeAnalysis)
	for rows.Next() {
		var entryID string
		var t journal.ThemeAnalysis
		if err := rows.Scan(&entryID, &t.Name, &t.Weight, &t.Occurrences); err != nil {
			return nil, fmt.Errorf("failed to scan theme row: %w", err)
		}
		out[entryID] = append(out[entryID], t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating theme rows: %w", err)
	}
	return out, nil
}

func loadDistortions(ctx context.Context, db *sql.DB, query string, args ...any) (map[string][]journal.CognitiveDistortion, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query distortions: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]journal.CognitiveDistortion)
	for rows.Next() {
		var entryID, examples string
		var d journal.CognitiveDistortion
		if err := rows.Scan(&entryID, &d.Type, &d.Description, &examples); err != nil {
			return nil, fmt.Errorf("failed to scan distortion row: %w", err)
		}
		if err := json.Unmarshal([]byte(examples), &d.Examples); err != nil {
			return nil, fmt.Errorf("failed to decode examples of entry %s: %w", entryID, err)
		}
		out[entryID] = append(out[entryID], d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distortion rows: %w", err)
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
