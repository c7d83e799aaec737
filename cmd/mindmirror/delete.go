package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindmirror/pkg/archive"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry from the archive",
	Long:  `Permanently remove an entry with its themes and thought patterns from the archive.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		err = archive.DeleteEntry(cmd.Context(), a.db, args[0])
		if errors.Is(err, archive.ErrEntryNotFound) {
			return fmt.Errorf("entry not found: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Entry %s deleted.\n", args[0])
		return nil
	},
}
