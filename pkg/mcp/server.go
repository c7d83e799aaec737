package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	mindmirror "github.com/unowned-ai/mindmirror/pkg"
	"github.com/unowned-ai/mindmirror/pkg/session"
)

// ToolNames lists every tool RegisterAll adds, in registration order.
var ToolNames = []string{"ping", "record_entry", "list_entries", "top_themes", "emotion_summary", "color_for_label"}

type MindMirrorMCPServer struct {
	mcpServer *server.MCPServer
	sess      *session.Session
}

// NewMindMirrorMCPServer wraps an mcp-go server around a session. The caller
// owns the session's archive connection.
func NewMindMirrorMCPServer(sess *session.Session) *MindMirrorMCPServer {
	s := server.NewMCPServer(
		"MindMirror MCP Server",
		mindmirror.Version,
		server.WithLogging(),
		server.WithRecovery(),
	)
	return &MindMirrorMCPServer{mcpServer: s, sess: sess}
}

// RegisterAll adds every journal tool.
func (s *MindMirrorMCPServer) RegisterAll() {
	RegisterPingTool(s.mcpServer)
	RegisterRecordEntryTool(s.mcpServer, s.sess)
	RegisterListEntriesTool(s.mcpServer, s.sess)
	RegisterTopThemesTool(s.mcpServer, s.sess)
	RegisterEmotionSummaryTool(s.mcpServer, s.sess)
	RegisterColorForLabelTool(s.mcpServer, s.sess)
}

// Start runs the stdio event loop until stdin closes. Register tools first.
func (s *MindMirrorMCPServer) Start() error {
	return server.ServeStdio(s.mcpServer)
}

// MCPRawServer exposes the underlying mcp-go server.
func (s *MindMirrorMCPServer) MCPRawServer() *server.MCPServer {
	return s.mcpServer
}
