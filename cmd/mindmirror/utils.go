package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

const dateLayout = "Mon, Jan 2 2006 15:04"

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readAnalysisFile decodes an analyzer result from a JSON file; "-" reads stdin.
func readAnalysisFile(path string) (journal.AnalysisResult, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return journal.AnalysisResult{}, fmt.Errorf("failed to open analysis file '%s': %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return decodeAnalysis(r)
}

func decodeAnalysis(r io.Reader) (journal.AnalysisResult, error) {
	var analysis journal.AnalysisResult
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&analysis); err != nil {
		return journal.AnalysisResult{}, fmt.Errorf("failed to decode analysis: %w", err)
	}
	return analysis, nil
}

// printEntry writes a human-readable entry. Short mode prints a single line.
func printEntry(w io.Writer, e journal.Entry, short bool) {
	if short {
		fmt.Fprintf(w, "%s  %s  %-12s %d/10  %s\n", e.ID, e.Date.Local().Format(dateLayout),
			e.Emotions.Primary, e.Emotions.Intensity, themeNames(e.Themes))
		return
	}

	fmt.Fprintf(w, "ID: %s\nDate: %s\n", e.ID, e.Date.Local().Format(dateLayout))
	emotions := e.Emotions.Primary
	if e.Emotions.HasSecondary() {
		emotions += ", " + e.Emotions.Secondary
	}
	fmt.Fprintf(w, "Emotions: %s (intensity %d/10, %s)\n", emotions, e.Emotions.Intensity, e.Emotions.Valence)
	fmt.Fprintf(w, "Themes: %s\n", themeNames(e.Themes))
	if e.HasDistortions() {
		fmt.Fprintln(w, "Thought patterns:")
		for _, d := range e.Distortions {
			fmt.Fprintf(w, "  - %s: %s\n", d.Type, d.Description)
			for _, ex := range d.Examples {
				fmt.Fprintf(w, "      %q\n", ex)
			}
		}
	}
	fmt.Fprintf(w, "Text: %s\n", e.Text)
}

func themeNames(themes []journal.ThemeAnalysis) string {
	if len(themes) == 0 {
		return "-"
	}
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
