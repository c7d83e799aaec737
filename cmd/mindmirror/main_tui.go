//go:build tui

package main

import (
	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindmirror/pkg/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show terminal UI",
	Long:  `Display an interactive terminal UI for browsing journal entries, their emotions, themes and thought patterns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		return tui.ShowTUI(a.sess, a.db)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
