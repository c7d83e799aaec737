package journal

import "time"

// SampleEntries returns the demo entries shown before a user has journaled,
// newest first.
func SampleEntries() []Entry {
	return []Entry{
		{
			ID:   "sample-1",
			Text: "Today was challenging. I felt overwhelmed with work deadlines and couldn't focus properly. I kept thinking about how I might disappoint my team if I don't deliver on time. The pressure is building up and I'm not sure how to handle it all. Maybe I'm not cut out for this level of responsibility.",
			Date: time.Date(2023, time.May, 15, 18, 30, 0, 0, time.UTC),
			Emotions: EmotionAnalysis{
				Primary:   "anxiety",
				Secondary: "self-doubt",
				Intensity: 8,
				Valence:   ValenceNegative,
			},
			Themes: []ThemeAnalysis{
				{Name: "work stress", Weight: 9, Occurrences: 4},
				{Name: "self-doubt", Weight: 7, Occurrences: 3},
				{Name: "fear of failure", Weight: 8, Occurrences: 2},
			},
			Distortions: []CognitiveDistortion{
				{
					Type:        "catastrophizing",
					Description: "Assuming the worst possible outcome",
					Examples:    []string{"I might disappoint my team", "I'm not cut out for this"},
				},
				{
					Type:        "all-or-nothing thinking",
					Description: "Seeing situations in black and white terms",
					Examples:    []string{"I couldn't focus properly"},
				},
			},
		},
		{
			ID:   "sample-2",
			Text: "I had a wonderful day today. The weather was perfect for a hike, and I felt so connected to nature. It's amazing how being outdoors can clear my mind. I've been making progress with my meditation practice too, and I'm starting to notice small changes in how I respond to stress. I feel proud of myself for sticking with it.",
			Date: time.Date(2023, time.May, 12, 20, 15, 0, 0, time.UTC),
			Emotions: EmotionAnalysis{
				Primary:   "contentment",
				Secondary: "pride",
				Intensity: 7,
				Valence:   ValencePositive,
			},
			Themes: []ThemeAnalysis{
				{Name: "nature", Weight: 8, Occurrences: 2},
				{Name: "self-improvement", Weight: 7, Occurrences: 3},
				{Name: "mindfulness", Weight: 6, Occurrences: 2},
			},
		},
		{
			ID:   "sample-3",
			Text: "I had that dream again where I'm trying to run but my legs won't move. It always happens when I'm feeling stuck in my life. I've been in this job for three years now and I'm not sure if I'm making progress or just going through the motions. Sometimes I wonder if I should take a risk and try something completely different.",
			Date: time.Date(2023, time.May, 10, 7, 45, 0, 0, time.UTC),
			Emotions: EmotionAnalysis{
				Primary:   "uncertainty",
				Secondary: "restlessness",
				Intensity: 6,
				Valence:   ValenceNeutral,
			},
			Themes: []ThemeAnalysis{
				{Name: "career path", Weight: 8, Occurrences: 3},
				{Name: "stagnation", Weight: 7, Occurrences: 2},
				{Name: "dreams", Weight: 5, Occurrences: 1},
			},
			Distortions: []CognitiveDistortion{
				{
					Type:        "fortune telling",
					Description: "Predicting negative outcomes without evidence",
					Examples:    []string{"I'm not sure if I'm making progress"},
				},
			},
		},
	}
}

// SampleThemes returns the aggregate themes shown on the demo insights view.
func SampleThemes() []ThemeAnalysis {
	return []ThemeAnalysis{
		{Name: "work stress", Weight: 9, Occurrences: 12},
		{Name: "self-doubt", Weight: 7, Occurrences: 8},
		{Name: "relationships", Weight: 6, Occurrences: 7},
		{Name: "health", Weight: 5, Occurrences: 6},
		{Name: "future plans", Weight: 8, Occurrences: 10},
		{Name: "family", Weight: 7, Occurrences: 9},
		{Name: "creativity", Weight: 4, Occurrences: 5},
		{Name: "nature", Weight: 6, Occurrences: 7},
		{Name: "mindfulness", Weight: 5, Occurrences: 6},
		{Name: "fear of failure", Weight: 8, Occurrences: 11},
	}
}
