package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

// addFilterFlags registers the emotion, theme and range filters on cmd.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("emotion", "", "Only entries with this primary emotion (case-sensitive)")
	cmd.Flags().String("theme", "", "Only entries containing this theme")
	cmd.Flags().String("range", "all", "Date range: all, today, week, month")
}

func filterFromFlags(cmd *cobra.Command) (journal.Filter, error) {
	emotion, _ := cmd.Flags().GetString("emotion")
	theme, _ := cmd.Flags().GetString("theme")
	rangeStr, _ := cmd.Flags().GetString("range")

	rng, err := journal.ParseDateRange(rangeStr)
	if err != nil {
		return journal.Filter{}, err
	}
	return journal.Filter{Emotion: emotion, Theme: theme, Range: rng}, nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, newest first",
	Long:  `List recorded entries newest first, optionally filtered by primary emotion, theme and date range.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		full, _ := cmd.Flags().GetBool("full")
		asJSON, _ := cmd.Flags().GetBool("json")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		entries := a.sess.Filter(filter)
		if limit > 0 && limit < len(entries) {
			entries = entries[:limit]
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return printJSON(out, entries)
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No entries found.")
			return nil
		}
		for i, e := range entries {
			if full && i > 0 {
				fmt.Fprintln(out)
			}
			printEntry(out, e, !full)
		}
		return nil
	},
}

func initListCmd() {
	addFilterFlags(listCmd)
	listCmd.Flags().Int("limit", 0, "Maximum number of entries to show (0 for all)")
	listCmd.Flags().Bool("full", false, "Show full entries instead of one line each")
	listCmd.Flags().Bool("json", false, "Print entries as JSON")
}
