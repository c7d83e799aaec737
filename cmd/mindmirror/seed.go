package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample journal entries into the archive",
	Long:  `Store the three demo entries so the list, themes and summary commands have data to show. Entries already present are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := seedSamples(cmd, a)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d sample entries (%d total).\n", n, a.sess.Len())
		return nil
	},
}

// seedSamples imports the sample entries oldest first so they list newest first.
func seedSamples(cmd *cobra.Command, a *app) (int, error) {
	samples := journal.SampleEntries()
	seeded := 0
	for i := len(samples) - 1; i >= 0; i-- {
		if _, ok := a.sess.Get(samples[i].ID); ok {
			continue
		}
		if err := a.sess.Import(cmd.Context(), samples[i]); err != nil {
			return seeded, fmt.Errorf("failed to seed entry %s: %w", samples[i].ID, err)
		}
		seeded++
	}
	return seeded, nil
}
