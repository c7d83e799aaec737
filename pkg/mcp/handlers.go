package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/unowned-ai/mindmirror/pkg/journal"
	"github.com/unowned-ai/mindmirror/pkg/session"
)

// RegisterPingTool registers the liveness tool.
func RegisterPingTool(s *server.MCPServer) {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Responds with 'pong' to check if the MindMirror MCP server is alive."),
	)
	s.AddTool(pingTool, pingHandler)
}

func pingHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong_mindmirror"), nil
}

// RegisterRecordEntryTool registers record_entry, which builds an entry from
// journal text and an analyzer result and stores it.
func RegisterRecordEntryTool(s *server.MCPServer, sess *session.Session) {
	tool := mcp.NewTool("record_entry",
		mcp.WithDescription("Records a journal entry from its text and the analyzer's result."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Raw journal text, stored verbatim.")),
		mcp.WithString("emotions", mcp.Required(), mcp.Description("Comma-separated emotion labels; the first is primary, the second secondary.")),
		mcp.WithNumber("sentiment", mcp.Required(), mcp.Description("Overall sentiment in [-1, 1].")),
		mcp.WithString("themes", mcp.Description("Optional comma-separated theme labels, most relevant first.")),
		mcp.WithString("insights", mcp.Description("Optional free-text insight; recorded as a pattern recognition distortion.")),
	)
	s.AddTool(tool, recordEntryHandler(sess))
}

func recordEntryHandler(sess *session.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments

		text, _ := args["text"].(string)
		emotionsStr, _ := args["emotions"].(string)
		themesStr, _ := args["themes"].(string)
		insights, _ := args["insights"].(string)
		sentiment, sentimentOk := args["sentiment"].(float64)

		if text == "" {
			return mcp.NewToolResultError("'text' parameter is required and must be a non-empty string."), nil
		}
		if !sentimentOk {
			return mcp.NewToolResultError("'sentiment' parameter is required and must be a number."), nil
		}

		entry, err := sess.Record(ctx, text, journal.AnalysisResult{
			Emotions:  splitList(emotionsStr),
			Sentiment: sentiment,
			Themes:    splitList(themesStr),
			Insights:  insights,
		})
		if err != nil {
			if errors.Is(err, journal.ErrInvalidInput) {
				return mcp.NewToolResultError(fmt.Sprintf("Invalid entry: %v", err)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to record entry: %v", err)), nil
		}

		return jsonResult(entry, "entry")
	}
}

// RegisterListEntriesTool registers list_entries.
func RegisterListEntriesTool(s *server.MCPServer, sess *session.Session) {
	tool := mcp.NewTool("list_entries",
		mcp.WithDescription("Lists journal entries newest first, optionally filtered by primary emotion, theme and date range."),
		mcp.WithString("emotion", mcp.Description("Optional primary emotion to match exactly (case-sensitive).")),
		mcp.WithString("theme", mcp.Description("Optional theme name the entry must contain.")),
		mcp.WithString("range", mcp.Description("Optional date range: all, today, week or month.")),
		mcp.WithNumber("limit", mcp.Description("Optional maximum number of entries to return.")),
	)
	s.AddTool(tool, listEntriesHandler(sess))
}

func listEntriesHandler(sess *session.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments

		filter, err := filterFromArgs(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		entries := sess.Filter(filter)
		if limit := intArg(args, "limit", 0); limit > 0 && limit < len(entries) {
			entries = entries[:limit]
		}

		if len(entries) == 0 {
			return mcp.NewToolResultText("[]"), nil
		}
		return jsonResult(entries, "entries")
	}
}

// RegisterTopThemesTool registers top_themes.
func RegisterTopThemesTool(s *server.MCPServer, sess *session.Session) {
	tool := mcp.NewTool("top_themes",
		mcp.WithDescription("Returns the heaviest themes across the matching entries. Equal weights keep first-seen order."),
		mcp.WithNumber("n", mcp.Description("Number of themes to return. Defaults to 5.")),
		mcp.WithString("emotion", mcp.Description("Optional primary emotion filter.")),
		mcp.WithString("theme", mcp.Description("Optional theme filter.")),
		mcp.WithString("range", mcp.Description("Optional date range: all, today, week or month.")),
	)
	s.AddTool(tool, topThemesHandler(sess))
}

func topThemesHandler(sess *session.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments

		filter, err := filterFromArgs(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		themes := sess.TopThemes(filter, intArg(args, "n", journal.DefaultTopThemes))
		if len(themes) == 0 {
			return mcp.NewToolResultText("[]"), nil
		}
		return jsonResult(themes, "themes")
	}
}

type emotionSummary struct {
	journal.Summary
	Emotions []journal.LabelCount `json:"emotions"`
}

// RegisterEmotionSummaryTool registers emotion_summary.
func RegisterEmotionSummaryTool(s *server.MCPServer, sess *session.Session) {
	tool := mcp.NewTool("emotion_summary",
		mcp.WithDescription("Summarizes the matching entries: totals, most frequent emotion, dominant theme and per-emotion counts."),
		mcp.WithString("emotion", mcp.Description("Optional primary emotion filter.")),
		mcp.WithString("theme", mcp.Description("Optional theme filter.")),
		mcp.WithString("range", mcp.Description("Optional date range: all, today, week or month.")),
	)
	s.AddTool(tool, emotionSummaryHandler(sess))
}

func emotionSummaryHandler(sess *session.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter, err := filterFromArgs(request.Params.Arguments)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return jsonResult(emotionSummary{
			Summary:  sess.Summary(filter),
			Emotions: sess.EmotionCounts(filter),
		}, "summary")
	}
}

// RegisterColorForLabelTool registers color_for_label.
func RegisterColorForLabelTool(s *server.MCPServer, sess *session.Session) {
	tool := mcp.NewTool("color_for_label",
		mcp.WithDescription("Returns the display color for an emotion or theme label."),
		mcp.WithString("label", mcp.Required(), mcp.Description("Label to look up, case-insensitive.")),
	)
	s.AddTool(tool, colorForLabelHandler(sess))
}

func colorForLabelHandler(sess *session.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		label, ok := request.Params.Arguments["label"].(string)
		if !ok || label == "" {
			return mcp.NewToolResultError("'label' parameter is required and must be a non-empty string."), nil
		}
		return mcp.NewToolResultText(sess.Color(label)), nil
	}
}
