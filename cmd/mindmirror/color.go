package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

var colorCmd = &cobra.Command{
	Use:   "color <label>",
	Short: "Print the display color for an emotion or theme label",
	Long: `Look up a label in the palette (the defaults plus any --palette file) ignoring case.
Labels outside the palette get a deterministic hsl() color derived from the label.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		palette, err := cfg.Palette()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), journal.ColorForLabel(args[0], palette, nil))
		return nil
	},
}
