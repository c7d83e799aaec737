package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mindmirror "github.com/unowned-ai/mindmirror/pkg"
	pkgdb "github.com/unowned-ai/mindmirror/pkg/db"
	"github.com/unowned-ai/mindmirror/pkg/utils"
)

var rootCmd = &cobra.Command{
	Use:     "mindmirror",
	Short:   "A journal that turns analyzed entries into emotional insights.",
	Long:    ``,
	Version: fmt.Sprintf("v%s", mindmirror.Version),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = &cobra.Command{
	Use:   fmt.Sprintf("completion %s", strings.Join(completionShells, "|")),
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for mindmirror.

The command prints a completion script to stdout. You can source it in your shell
or install it to the appropriate location for your shell to enable completions permanently.

Examples:

  Bash (current shell):
    $ source <(mindmirror completion bash)

  Bash (persist):
    $ mindmirror completion bash > /etc/bash_completion.d/mindmirror

  Zsh:
    $ mindmirror completion zsh > "${fpath[1]}/_mindmirror"

  Fish:
    $ mindmirror completion fish | source
    $ mindmirror completion fish > ~/.config/fish/completions/mindmirror.fish

  PowerShell:
    PS> mindmirror completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mindmirror",
	Long:  `All software has versions. This is mindmirror's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), mindmirror.Version)
	},
}

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the mindmirror archive database",
	Long:  `Provides commands for managing the MindMirror SQLite archive, including schema upgrades.`,
}

var dbUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade the archive schema to the latest version for the archivedb component",
	Long: `Connects to the SQLite database at the configured path (--db flag or MINDMIRROR_DB_PATH)
and applies any necessary schema migrations to bring the archivedb component up to the
current application schema version. If the database does not exist or is uninitialized
for this component, it will be created and initialized with the latest schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		setupLogger(cfg)

		path, err := utils.ResolveAndEnsureDBPath(cfg.DBPath)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Attempting to upgrade archivedb component in database at: %s (WAL: %t, Sync: %s)\n", path, cfg.WAL, cfg.SyncMode)

		dbConn, err := pkgdb.OpenDBConnection(path, cfg.WAL, cfg.SyncMode)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		return pkgdb.UpgradeDB(dbConn, path, pkgdb.TargetSchemaVersion)
	},
}

func initCmd() {
	// Persistent flags override the MINDMIRROR_* environment variables.
	rootCmd.PersistentFlags().String("db", "", "Path to the archive database file (uses a system-specific default if not provided)")
	rootCmd.PersistentFlags().Bool("wal", false, "Enable SQLite WAL (Write-Ahead Logging) mode")
	rootCmd.PersistentFlags().String("sync", "FULL", "SQLite synchronous pragma (OFF, NORMAL, FULL, EXTRA)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("scorer", "hash", "Theme scorer for new entries (hash, random)")
	rootCmd.PersistentFlags().Int64("seed", 1, "Seed for the random theme scorer")
	rootCmd.PersistentFlags().String("palette", "", "YAML file with label colors laid over the default palette")

	dbCmd.AddCommand(dbUpgradeCmd)

	initRecordCmd()
	initListCmd()
	initThemesCmd()
	initSummaryCmd()
	initSearchCmd()
	rootCmd.AddCommand(completionCmd, versionCmd, dbCmd, recordCmd, listCmd, themesCmd,
		summaryCmd, searchCmd, colorCmd, seedCmd, deleteCmd, mcpCmd)
}

func main() {
	initCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
