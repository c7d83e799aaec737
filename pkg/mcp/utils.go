package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/unowned-ai/mindmirror/pkg/journal"
)

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// filterFromArgs reads the optional emotion, theme and range arguments.
func filterFromArgs(args map[string]interface{}) (journal.Filter, error) {
	emotion, _ := args["emotion"].(string)
	theme, _ := args["theme"].(string)
	rangeStr, _ := args["range"].(string)

	rng, err := journal.ParseDateRange(rangeStr)
	if err != nil {
		return journal.Filter{}, err
	}
	return journal.Filter{Emotion: emotion, Theme: theme, Range: rng}, nil
}

// intArg reads a JSON number argument, falling back to def when absent.
func intArg(args map[string]interface{}, name string, def int) int {
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

func jsonResult(v any, what string) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize %s to JSON: %v", what, err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
