package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// UI styles and layout settings
// Color palette "Blue Moon" from https://gogh-co.github.io/Gogh/
const (
	colorGray     = "#353b52"
	colorWhite    = "#ffffff"
	colorGreen    = "#acfab4"
	colorGreenDim = "#b4c4b4"
	colorRed      = "#e61f44"
	colorRedDim   = "#d06178"
	colorPurple   = "#b9a3eb"
	colorBlue     = "#89ddff"

	bordersAndPaddingWidth = 4
	panelHeightPadding     = 3
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue)).
			Background(lipgloss.Color(colorGray)).
			Padding(0, 2).Align(lipgloss.Center)
	subtitleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray)).
			Background(lipgloss.Color(colorGreen))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBlue))
	themeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPurple))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray))
)

// valenceColorize renders text green for positive, red for negative and gray
// otherwise.
func valenceColorize(text string, valence string) string {
	switch valence {
	case "positive":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreenDim)).Render(text)
	case "negative":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorRedDim)).Render(text)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)).Render(text)
	}
}

// labelColorize renders a label in its palette color.
func labelColorize(label, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(label)
}

// intensityBar draws intensity as filled and empty cells, e.g. "■■■□□□□□□□ 3/10".
func intensityBar(intensity, scale int) string {
	intensity = min(max(intensity, 0), scale)
	return fmt.Sprintf("%s%s %d/%d", strings.Repeat("■", intensity), strings.Repeat("□", scale-intensity), intensity, scale)
}

// truncate shortens text to width runes, ending with "..".
func truncate(text string, width int) string {
	r := []rune(text)
	if len(r) <= width {
		return text
	}
	if width <= 3 {
		return string(r[:max(width, 0)])
	}
	return string(r[:width-2]) + ".."
}

func (m model) columnWidths() (int, int) {
	if m.columnFocus == focusDetail {
		left := (m.width * 30) / 100
		return left, m.width - left
	}
	left := (m.width * 40) / 100
	return left, m.width - left
}
