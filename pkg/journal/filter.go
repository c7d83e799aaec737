package journal

import (
	"fmt"
	"sort"
	"time"
)

// DefaultTopThemes is the number of themes TopThemesByWeight returns for n <= 0.
const DefaultTopThemes = 5

// FilterByEmotion returns entries whose primary emotion equals label exactly.
// Matching is case-sensitive; callers normalize before calling if they need to.
func FilterByEmotion(entries []Entry, label string) []Entry {
	out := []Entry{}
	for _, e := range entries {
		if e.Emotions.Primary == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterByTheme returns entries with at least one theme named themeName.
func FilterByTheme(entries []Entry, themeName string) []Entry {
	out := []Entry{}
	for _, e := range entries {
		if e.HasTheme(themeName) {
			out = append(out, e)
		}
	}
	return out
}

// TopThemesByWeight returns the n heaviest themes. Equal weights keep their
// input order, which is what chart legends show.
func TopThemesByWeight(themes []ThemeAnalysis, n int) []ThemeAnalysis {
	if n <= 0 {
		n = DefaultTopThemes
	}
	sorted := append([]ThemeAnalysis{}, themes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

type DateRange string

const (
	RangeAll   DateRange = ""
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

// ParseDateRange accepts "", "all", "today", "week" and "month".
func ParseDateRange(s string) (DateRange, error) {
	switch s {
	case "", "all":
		return RangeAll, nil
	case string(RangeToday), string(RangeWeek), string(RangeMonth):
		return DateRange(s), nil
	default:
		return RangeAll, fmt.Errorf("%w: unknown date range %q", ErrInvalidInput, s)
	}
}

// Since returns the earliest date included in the range, or the zero time for RangeAll.
func (r DateRange) Since(now time.Time) time.Time {
	switch r {
	case RangeToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeMonth:
		return now.AddDate(0, -1, 0)
	default:
		return time.Time{}
	}
}

// FilterByDateRange keeps entries dated at or after the start of rng.
func FilterByDateRange(entries []Entry, rng DateRange, now time.Time) []Entry {
	since := rng.Since(now)
	out := []Entry{}
	for _, e := range entries {
		if !e.Date.Before(since) {
			out = append(out, e)
		}
	}
	return out
}

// Filter combines the selections offered by the journal view. Zero fields match everything.
type Filter struct {
	Emotion string
	Theme   string
	Range   DateRange
}

func (f Filter) Apply(entries []Entry, now time.Time) []Entry {
	out := append([]Entry{}, entries...)
	if f.Emotion != "" {
		out = FilterByEmotion(out, f.Emotion)
	}
	if f.Theme != "" {
		out = FilterByTheme(out, f.Theme)
	}
	if f.Range != RangeAll {
		out = FilterByDateRange(out, f.Range, now)
	}
	return out
}

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// EmotionCounts tallies primary emotions, most frequent first.
// Ties keep the order in which the labels first appear.
func EmotionCounts(entries []Entry) []LabelCount {
	index := make(map[string]int)
	counts := []LabelCount{}
	for _, e := range entries {
		label := e.Emotions.Primary
		if i, ok := index[label]; ok {
			counts[i].Count++
			continue
		}
		index[label] = len(counts)
		counts = append(counts, LabelCount{Label: label, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// AggregateThemes merges same-named themes across entries, keeping the
// highest weight and summing occurrences, in first-appearance order.
func AggregateThemes(entries []Entry) []ThemeAnalysis {
	index := make(map[string]int)
	out := []ThemeAnalysis{}
	for _, e := range entries {
		for _, t := range e.Themes {
			i, ok := index[t.Name]
			if !ok {
				index[t.Name] = len(out)
				out = append(out, t)
				continue
			}
			if t.Weight > out[i].Weight {
				out[i].Weight = t.Weight
			}
			out[i].Occurrences += t.Occurrences
		}
	}
	return out
}

// Summary is the headline panel of the insights view.
type Summary struct {
	TotalEntries        int             `json:"totalEntries"`
	MostFrequentEmotion string          `json:"mostFrequentEmotion,omitempty"`
	DominantTheme       string          `json:"dominantTheme,omitempty"`
	AverageIntensity    float64         `json:"averageIntensity"`
	Valences            map[Valence]int `json:"valences"`
}

func Summarize(entries []Entry) Summary {
	s := Summary{
		TotalEntries: len(entries),
		Valences: map[Valence]int{
			ValencePositive: 0,
			ValenceNegative: 0,
			ValenceNeutral:  0,
		},
	}
	if len(entries) == 0 {
		return s
	}

	total := 0
	for _, e := range entries {
		total += e.Emotions.Intensity
		s.Valences[e.Emotions.Valence]++
	}
	s.AverageIntensity = float64(total) / float64(len(entries))

	if counts := EmotionCounts(entries); len(counts) > 0 {
		s.MostFrequentEmotion = counts[0].Label
	}
	if top := TopThemesByWeight(AggregateThemes(entries), 1); len(top) > 0 {
		s.DominantTheme = top[0].Name
	}
	return s
}
