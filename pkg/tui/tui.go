package tui

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unowned-ai/mindmirror/pkg/journal"
	"github.com/unowned-ai/mindmirror/pkg/session"
)

const (
	focusList = iota
	focusDetail
)

type model struct {
	sess    *session.Session
	entries []journal.Entry

	columnFocus int // focusList or focusDetail
	width       int // Current terminal width (for layout)
	height      int // Current terminal height
	err         error

	dbFilename string

	quitting bool

	entryCursor int // Index of selected entry

	filtering     bool // emotion filter input has focus
	filterInput   textinput.Model
	emotionFilter string // applied filter, empty for all entries
}

// Initialize TUI model
func initModel(sess *session.Session, db *sql.DB) model {
	_, file := getDbPragmaList(db)

	fi := textinput.New()
	fi.Placeholder = "primary emotion, e.g. anxiety"
	fi.CharLimit = 64

	var dbFilename string
	if file != "" {
		dbFilename = filepath.Base(file)
	}

	return model{
		sess:        sess,
		entries:     []journal.Entry{},
		columnFocus: focusList,
		dbFilename:  dbFilename,
		filterInput: fi,
	}
}

func (m model) Init() tea.Cmd {
	return loadEntries(m.sess, m.emotionFilter)
}

// Processes events like window resize, loaded data, and key presses
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case error:
		m.err = msg
		return m, nil

	case entriesMsg:
		m.entries = msg
		m.entryCursor = 0
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.Type {
			case tea.KeyEnter:
				m.filtering = false
				m.filterInput.Blur()
				m.emotionFilter = strings.TrimSpace(m.filterInput.Value())
				return m, loadEntries(m.sess, m.emotionFilter)
			case tea.KeyEsc:
				m.filtering = false
				m.filterInput.Blur()
				m.filterInput.SetValue(m.emotionFilter)
				return m, nil
			}
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.entryCursor > 0 {
				m.entryCursor--
			}

		case "down", "j":
			if m.entryCursor < len(m.entries)-1 {
				m.entryCursor++
			}

		case "tab":
			if m.columnFocus == focusList {
				m.columnFocus = focusDetail
			} else {
				m.columnFocus = focusList
			}

		case "/":
			m.filtering = true
			m.filterInput.SetValue(m.emotionFilter)
			m.filterInput.CursorEnd()
			return m, m.filterInput.Focus()

		case "esc":
			if m.columnFocus == focusDetail {
				m.columnFocus = focusList
				return m, nil
			}
			if m.emotionFilter != "" {
				m.emotionFilter = ""
				m.filterInput.Reset()
				return m, loadEntries(m.sess, "")
			}
		}
	}
	return m, nil
}

func (m model) selected() (journal.Entry, bool) {
	if m.entryCursor < 0 || m.entryCursor >= len(m.entries) {
		return journal.Entry{}, false
	}
	return m.entries[m.entryCursor], true
}

// Render the UI
func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	titleBar := titleStyle.Width(m.width).Render("MindMirror - journal reflections")
	leftWidth, rightWidth := m.columnWidths()

	leftPanel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(colorGray)).
		Padding(0, 2).
		Width(leftWidth).Height(m.height - panelHeightPadding).
		Render(m.listView(leftWidth))

	rightPanel := lipgloss.NewStyle().Padding(0, 2).
		Width(rightWidth).Height(m.height - panelHeightPadding).
		Render(m.detailView(rightWidth))

	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	footerText := "\n↑/↓ to navigate • tab to switch pane • / to filter by emotion • esc to clear • q to quit"
	footerBar := footerStyle.Width(m.width).Render(footerText)

	return titleBar + "\n\n" + columns + footerBar
}

func (m model) listView(width int) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Width(width - bordersAndPaddingWidth).Render("  Entries"))
	b.WriteString("\n")

	switch {
	case m.filtering:
		b.WriteString("Filter: " + m.filterInput.View() + "\n\n")
	case m.emotionFilter != "":
		b.WriteString("Filter: " + labelColorize(m.emotionFilter, m.sess.Color(m.emotionFilter)) + "\n\n")
	default:
		b.WriteString("\n")
	}

	if len(m.entries) == 0 {
		if m.emotionFilter != "" {
			b.WriteString("  No entries match this emotion.\n")
		} else {
			b.WriteString("  No entries yet.\n")
		}
	}

	for i, entry := range m.entries {
		pointer := "  "
		itemStyle := inactiveStyle
		if i == m.entryCursor {
			itemStyle = selectedStyle
			if m.columnFocus == focusList {
				pointer = "> "
			}
		}

		availableWidth := width - len(pointer) - bordersAndPaddingWidth - 1
		line := truncate(fmt.Sprintf("%s  %s", entry.Date.Format("Jan 02"), entry.Emotions.Primary), availableWidth)
		b.WriteString(pointer + itemStyle.Render(line) + "\n")
	}

	if m.dbFilename != "" {
		b.WriteString("\n" + footerStyle.Render("Database file: "+m.dbFilename) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}
	return b.String()
}

func (m model) detailView(width int) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Width(width - bordersAndPaddingWidth).Render("Entry"))
	b.WriteString("\n\n")

	entry, ok := m.selected()
	if !ok {
		b.WriteString("Select an entry to view details.")
		return b.String()
	}

	e := entry.Emotions
	emotions := labelColorize(e.Primary, m.sess.Color(e.Primary))
	if e.HasSecondary() {
		emotions += ", " + labelColorize(e.Secondary, m.sess.Color(e.Secondary))
	}

	b.WriteString(labelStyle.Render("Date: ") + entry.Date.Format("Monday, January 2, 2006 15:04") + "\n")
	b.WriteString(labelStyle.Render("Emotions: ") + emotions + "\n")
	b.WriteString(labelStyle.Render("Intensity: ") + intensityBar(e.Intensity, journal.MaxIntensity) + "\n")
	b.WriteString(labelStyle.Render("Valence: ") + valenceColorize(string(e.Valence), string(e.Valence)) + "\n\n")

	var themes []string
	for _, t := range entry.Themes {
		themes = append(themes, fmt.Sprintf("%s (%d)", t.Name, t.Weight))
	}
	themesLine := "-"
	if len(themes) > 0 {
		themesLine = strings.Join(themes, ", ")
	}
	b.WriteString(labelStyle.Render("Themes: ") + themeStyle.Render(themesLine) + "\n\n")

	if entry.HasDistortions() {
		b.WriteString(labelStyle.Render("Thought patterns:") + "\n")
		for _, d := range entry.Distortions {
			b.WriteString(fmt.Sprintf("  • %s: %s\n", d.Type, d.Description))
			for _, ex := range d.Examples {
				b.WriteString(fmt.Sprintf("      %q\n", ex))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Width(width - bordersAndPaddingWidth).
		Foreground(lipgloss.Color(colorWhite)).Render(entry.Text))
	return b.String()
}

// ShowTUI starts the Bubble Tea browser over the session's entries. db is
// only used to show the archive file name and may be nil.
func ShowTUI(sess *session.Session, db *sql.DB) error {
	p := tea.NewProgram(initModel(sess, db), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
