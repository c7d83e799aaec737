package journal

import (
	"time"
)

type Valence string

const (
	ValencePositive Valence = "positive"
	ValenceNegative Valence = "negative"
	ValenceNeutral  Valence = "neutral"
)

// ValenceFromSentiment maps the sign of a sentiment score to a valence.
func ValenceFromSentiment(sentiment float64) Valence {
	switch {
	case sentiment > 0:
		return ValencePositive
	case sentiment < 0:
		return ValenceNegative
	default:
		return ValenceNeutral
	}
}

type EmotionAnalysis struct {
	Primary   string  `json:"primary"`
	Secondary string  `json:"secondary,omitempty"`
	Intensity int     `json:"intensity"`
	Valence   Valence `json:"valence"`
}

// HasSecondary reports whether the analyzer supplied a secondary emotion.
func (e EmotionAnalysis) HasSecondary() bool {
	return e.Secondary != ""
}

type ThemeAnalysis struct {
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Occurrences int    `json:"occurrences"`
}

type CognitiveDistortion struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

// Entry is one journaling session and its derived analysis.
// Entries are values: once built they are never modified, and the slices they
// hand out through the accessors are copies.
type Entry struct {
	ID          string                `json:"id"`
	Text        string                `json:"text"`
	Date        time.Time             `json:"date"`
	Emotions    EmotionAnalysis       `json:"emotions"`
	Themes      []ThemeAnalysis       `json:"themes"`
	Distortions []CognitiveDistortion `json:"distortions,omitempty"`
}

// HasDistortions reports whether the entry carries a distortions collection.
// A nil collection means the analyzer reported none.
func (e Entry) HasDistortions() bool {
	return e.Distortions != nil
}

// HasTheme reports whether any of the entry's themes is named name.
func (e Entry) HasTheme(name string) bool {
	for _, t := range e.Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// clone returns a deep copy so callers cannot reach the stored slices.
func (e Entry) clone() Entry {
	out := e
	if e.Themes != nil {
		out.Themes = append([]ThemeAnalysis(nil), e.Themes...)
	}
	if e.Distortions != nil {
		out.Distortions = make([]CognitiveDistortion, len(e.Distortions))
		for i, d := range e.Distortions {
			d.Examples = append([]string(nil), d.Examples...)
			out.Distortions[i] = d
		}
	}
	return out
}

// AnalysisResult is the fixed-shape output of the external analyzer.
// Emotions[0] is the primary emotion, Emotions[1] the optional secondary.
type AnalysisResult struct {
	Emotions  []string `json:"emotions"`
	Sentiment float64  `json:"sentiment"`
	Themes    []string `json:"themes"`
	Insights  string   `json:"insights,omitempty"`
}
