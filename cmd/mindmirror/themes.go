package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Show the heaviest themes across entries",
	Long: `Aggregate themes across the matching entries (highest weight, summed occurrences)
and print the top ones by weight. Equal weights keep the order they first appeared in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := filterFromFlags(cmd)
		if err != nil {
			return err
		}
		top, _ := cmd.Flags().GetInt("top")
		asJSON, _ := cmd.Flags().GetBool("json")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		themes := a.sess.TopThemes(filter, top)

		out := cmd.OutOrStdout()
		if asJSON {
			return printJSON(out, themes)
		}
		if len(themes) == 0 {
			fmt.Fprintln(out, "No themes found.")
			return nil
		}
		for i, t := range themes {
			fmt.Fprintf(out, "%2d. %-24s weight %2d  occurrences %d\n", i+1, t.Name, t.Weight, t.Occurrences)
		}
		return nil
	},
}

func initThemesCmd() {
	addFilterFlags(themesCmd)
	themesCmd.Flags().Int("top", journal.DefaultTopThemes, "Number of themes to show")
	themesCmd.Flags().Bool("json", false, "Print themes as JSON")
}
