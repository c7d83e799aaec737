package journal

import (
	"hash/fnv"
	"math/rand"
	"sync"
)

// Score ranges used when the analyzer only supplies theme labels.
const (
	minThemeWeight      = 5
	maxThemeWeight      = 10
	minThemeOccurrences = 1
	maxThemeOccurrences = 4
)

type ThemeScore struct {
	Weight      int
	Occurrences int
}

// ThemeScorer assigns a weight and occurrence count to a theme label.
// The builder's scorers are placeholders until a real model supplies them.
type ThemeScorer interface {
	ScoreTheme(label string) ThemeScore
}

// HashScorer derives a score from an FNV-1a hash of the label. The same label
// always gets the same score, which keeps rankings reproducible across runs.
type HashScorer struct{}

func (HashScorer) ScoreTheme(label string) ThemeScore {
	h := fnv.New32a()
	_, _ = h.Write([]byte(label))
	sum := h.Sum32()

	weightSpan := uint32(maxThemeWeight - minThemeWeight + 1)
	occSpan := uint32(maxThemeOccurrences - minThemeOccurrences + 1)
	return ThemeScore{
		Weight:      minThemeWeight + int(sum%weightSpan),
		Occurrences: minThemeOccurrences + int((sum/weightSpan)%occSpan),
	}
}

// RandomScorer samples uniformly from the same ranges as HashScorer.
// Output is reproducible for a given seed.
type RandomScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomScorer(seed int64) *RandomScorer {
	return &RandomScorer{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomScorer) ScoreTheme(string) ThemeScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ThemeScore{
		Weight:      minThemeWeight + s.rng.Intn(maxThemeWeight-minThemeWeight+1),
		Occurrences: minThemeOccurrences + s.rng.Intn(maxThemeOccurrences-minThemeOccurrences+1),
	}
}

// FixedScorer gives every label the same score.
type FixedScorer ThemeScore

func (s FixedScorer) ScoreTheme(string) ThemeScore {
	return ThemeScore(s)
}
