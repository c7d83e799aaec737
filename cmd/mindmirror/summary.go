package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize emotions and themes across entries",
	Long:  `Print the number of entries, the most frequent emotion, the dominant theme, the average intensity and per-emotion counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		printSummary(cmd.OutOrStdout(), a.sess.Summary(filter), a.sess.EmotionCounts(filter))
		return nil
	},
}

func printSummary(w io.Writer, s journal.Summary, counts []journal.LabelCount) {
	fmt.Fprintf(w, "Entries: %d\n", s.TotalEntries)
	if s.TotalEntries == 0 {
		return
	}
	fmt.Fprintf(w, "Most frequent emotion: %s\n", s.MostFrequentEmotion)
	if s.DominantTheme != "" {
		fmt.Fprintf(w, "Dominant theme: %s\n", s.DominantTheme)
	}
	fmt.Fprintf(w, "Average intensity: %.1f/10\n", s.AverageIntensity)
	fmt.Fprintf(w, "Valence: %d positive, %d negative, %d neutral\n",
		s.Valences[journal.ValencePositive], s.Valences[journal.ValenceNegative], s.Valences[journal.ValenceNeutral])
	fmt.Fprintln(w, "Emotions:")
	for _, c := range counts {
		fmt.Fprintf(w, "  %-16s %d\n", c.Label, c.Count)
	}
}

func initSummaryCmd() {
	addFilterFlags(summaryCmd)
}
