package journal

import (
	"fmt"
	"hash/fnv"
	"io"
	"math/rand"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Palette maps lower-cased labels to display colors.
type Palette map[string]string

// ColorFallback synthesizes a color for a label missing from the palette.
type ColorFallback func(label string) string

// DefaultPalette returns a fresh copy of the built-in emotion colors.
func DefaultPalette() Palette {
	return Palette{
		"anxiety":      "#FF6B81",
		"self-doubt":   "#A569BD",
		"contentment":  "#5DADE2",
		"pride":        "#58D68D",
		"uncertainty":  "#F4D03F",
		"restlessness": "#EB984E",
		"joy":          "#2ECC71",
		"sadness":      "#3498DB",
		"anger":        "#E74C3C",
		"fear":         "#9B59B6",
		"surprise":     "#F1C40F",
		"disgust":      "#1ABC9C",
	}
}

// Lookup finds label ignoring case.
func (p Palette) Lookup(label string) (string, bool) {
	c, ok := p[strings.ToLower(label)]
	return c, ok
}

// Merge returns a new palette with other's colors laid over p's.
func (p Palette) Merge(other Palette) Palette {
	out := make(Palette, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[strings.ToLower(k)] = v
	}
	return out
}

// ColorForLabel returns the palette color for label, or fallback(label) on a miss.
// A nil fallback means HashColor.
func ColorForLabel(label string, palette Palette, fallback ColorFallback) string {
	if c, ok := palette.Lookup(label); ok {
		return c
	}
	if fallback == nil {
		fallback = HashColor
	}
	return fallback(label)
}

// HashColor picks a hue from the label's hash, so a given label always gets the same color.
func HashColor(label string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(label)))
	return fmt.Sprintf("hsl(%d, 70%%, 60%%)", h.Sum32()%360)
}

// RandomColor returns a fallback that picks a random hue on every call.
// Two calls for the same label usually differ.
func RandomColor(rng *rand.Rand) ColorFallback {
	var mu sync.Mutex
	return func(string) string {
		mu.Lock()
		defer mu.Unlock()
		return fmt.Sprintf("hsl(%d, 70%%, 60%%)", rng.Intn(360))
	}
}

type paletteFile struct {
	Colors map[string]string `yaml:"colors"`
}

// LoadPalette reads a YAML document of the form `colors: {label: color}`.
func LoadPalette(r io.Reader) (Palette, error) {
	var f paletteFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return Palette{}, nil
		}
		return nil, fmt.Errorf("failed to decode palette: %w", err)
	}
	p := make(Palette, len(f.Colors))
	for label, color := range f.Colors {
		if strings.TrimSpace(color) == "" {
			return nil, fmt.Errorf("%w: empty color for label %q", ErrInvalidInput, label)
		}
		p[strings.ToLower(label)] = color
	}
	return p, nil
}
