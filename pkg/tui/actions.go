package tui

import (
	"database/sql"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unowned-ai/mindmirror/pkg/journal"
	"github.com/unowned-ai/mindmirror/pkg/session"
)

type entriesMsg []journal.Entry

// loadEntries reads the session's entries whose primary emotion matches
// emotion, or all of them when emotion is empty.
func loadEntries(sess *session.Session, emotion string) tea.Cmd {
	return func() tea.Msg {
		return entriesMsg(sess.Filter(journal.Filter{Emotion: emotion}))
	}
}

// Get database name and file path
func getDbPragmaList(db *sql.DB) (string, string) {
	var name, file string
	if db == nil {
		return name, file
	}
	err := db.QueryRow(`PRAGMA database_list`).Scan(new(int), &name, &file)
	if err != nil {
		return name, file
	}
	return name, file
}
