package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a journal entry from its text and an analyzer result",
	Long: `Record builds an entry from the journal text and the analyzer's result, stores it
in the archive and prints it.

The analysis comes either from flags (--emotions, --sentiment, --themes, --insights)
or from a JSON file given with --analysis ("-" reads stdin):

  {"emotions":["anxiety","self-doubt"],"sentiment":-0.6,"themes":["work stress"],"insights":"..."}

Example:
  mindmirror record --text "Long day, but I shipped it." --emotions relief,pride --sentiment 0.5 --themes work`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")
		analysisPath, _ := cmd.Flags().GetString("analysis")
		asJSON, _ := cmd.Flags().GetBool("json")

		if text == "" {
			return errors.New("entry text is required")
		}

		var analysis journal.AnalysisResult
		if analysisPath != "" {
			var err error
			if analysis, err = readAnalysisFile(analysisPath); err != nil {
				return err
			}
		} else {
			emotions, _ := cmd.Flags().GetString("emotions")
			themes, _ := cmd.Flags().GetString("themes")
			analysis.Emotions = splitList(emotions)
			analysis.Sentiment, _ = cmd.Flags().GetFloat64("sentiment")
			analysis.Themes = splitList(themes)
			analysis.Insights, _ = cmd.Flags().GetString("insights")
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		entry, err := a.sess.Record(cmd.Context(), text, analysis)
		if errors.Is(err, journal.ErrInvalidInput) {
			return fmt.Errorf("invalid entry: %w", err)
		}
		if err != nil {
			return fmt.Errorf("failed to record entry: %w", err)
		}

		if asJSON {
			return printJSON(cmd.OutOrStdout(), entry)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Entry recorded.")
		printEntry(cmd.OutOrStdout(), entry, false)
		return nil
	},
}

func initRecordCmd() {
	recordCmd.Flags().String("text", "", "Journal entry text (required)")
	recordCmd.Flags().String("emotions", "", "Comma-separated emotion labels, primary first")
	recordCmd.Flags().Float64("sentiment", 0, "Overall sentiment in [-1, 1]")
	recordCmd.Flags().String("themes", "", "Comma-separated theme labels")
	recordCmd.Flags().String("insights", "", "Analyzer insight, recorded as a thought pattern")
	recordCmd.Flags().String("analysis", "", "JSON file with the analyzer result ('-' for stdin)")
	recordCmd.Flags().Bool("json", false, "Print the recorded entry as JSON")
	recordCmd.MarkFlagRequired("text")
	recordCmd.MarkFlagsMutuallyExclusive("analysis", "emotions")
}
