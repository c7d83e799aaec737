package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindmirror/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MindMirror MCP server (stdio)",
	Long: `Start a Model Context Protocol (MCP) server that exposes journal recording,
filtering, theme ranking, emotion summaries and palette colors as MCP tools via STDIO.

The --db flag is optional. If not provided, a system-specific default location will be used:
- Windows: %USERPROFILE%\AppData\Roaming\mindmirror\mindmirror.db
- macOS: ~/Library/Application Support/mindmirror/mindmirror.db
- Linux: ~/.local/share/mindmirror/mindmirror.db

Example:
  mindmirror mcp
  mindmirror mcp --db mindmirror.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		srv := mcp.NewMindMirrorMCPServer(a.sess)
		srv.RegisterAll()

		// Logs go to stderr so we don't contaminate the JSON-RPC stream on stdout.
		a.log.Info().
			Str("db", a.dbPath).
			Bool("wal", a.cfg.WAL).
			Str("sync", a.cfg.SyncMode).
			Int("entries", a.sess.Len()).
			Str("tools", strings.Join(mcp.ToolNames, ", ")).
			Msg("MindMirror MCP server listening on STDIN/STDOUT")

		return srv.Start()
	},
}
