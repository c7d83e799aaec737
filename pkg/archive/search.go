package archive

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

// MatchedEntry holds an Entry and the number of query themes it contains.
type MatchedEntry struct {
	journal.Entry
	MatchCount int `json:"matchCount"`
}

// SearchEntriesByThemes returns the entries containing at least one of the
// given theme names, ranked by the number of matching themes and then newest
// first. Theme names match exactly.
func SearchEntriesByThemes(ctx context.Context, db *sql.DB, themes []string) ([]MatchedEntry, error) {
	if len(themes) == 0 {
		return []MatchedEntry{}, nil
	}

	placeholders := strings.Repeat("?,", len(themes)-1) + "?"

	// Duplicate theme names within an entry count once.
	sqlQuery := fmt.Sprintf(`
		SELECT
			e.id, COUNT(DISTINCT et.name) AS match_count
		FROM
			entries e
		JOIN
			entry_themes et ON e.id = et.entry_id
		WHERE
			et.name IN (%s)
		GROUP BY
			e.id
		ORDER BY
			match_count DESC,
			e.rowid DESC;
	`, placeholders)

	args := make([]interface{}, 0, len(themes))
	for _, theme := range themes {
		args = append(args, theme)
	}

	rows, err := db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}

	type hit struct {
		id    string
		count int
	}
	var hits []hit
	for rows.Next() {
		var h hit
		if err := rows.Scan(&h.id, &h.count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan search result row: %w", err)
		}
		hits = append(hits, h)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating over search results: %w", err)
	}
	// Closed before loading entries: an in-memory archive has a single connection.
	rows.Close()

	results := make([]MatchedEntry, 0, len(hits))
	for _, h := range hits {
		entry, err := GetEntry(ctx, db, h.id)
		if err != nil {
			return nil, err
		}
		results = append(results, MatchedEntry{Entry: entry, MatchCount: h.count})
	}
	return results, nil
}
