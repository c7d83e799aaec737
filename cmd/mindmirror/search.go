package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindmirror/pkg/archive"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search archived entries by theme",
	Long: `Find entries containing any of the given themes, ranked by how many of them match
and then newest first.

Example:
  mindmirror search --themes "work stress,career path"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		themesStr, _ := cmd.Flags().GetString("themes")
		asJSON, _ := cmd.Flags().GetBool("json")

		themes := splitList(themesStr)
		if len(themes) == 0 {
			return errors.New("at least one theme is required")
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		results, err := archive.SearchEntriesByThemes(cmd.Context(), a.db, themes)
		if err != nil {
			return fmt.Errorf("failed to search entries: %w", err)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return printJSON(out, results)
		}
		if len(results) == 0 {
			fmt.Fprintln(out, "No entries found matching the given themes.")
			return nil
		}
		for _, r := range results {
			fmt.Fprintf(out, "[%d] ", r.MatchCount)
			printEntry(out, r.Entry, true)
		}
		return nil
	},
}

func initSearchCmd() {
	searchCmd.Flags().String("themes", "", "Comma-separated theme names to match (required)")
	searchCmd.Flags().Bool("json", false, "Print results as JSON")
	searchCmd.MarkFlagRequired("themes")
}
