package tools

import (
	"context"

	"github.com/ewrenn/calc/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// AccumulatorValueTool handles accumulator state queries
type AccumulatorValueTool struct {
	session *Session
}

// NewAccumulatorValueTool creates a new accumulator query tool
func NewAccumulatorValueTool(session *Session) *AccumulatorValueTool {
	return &AccumulatorValueTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *AccumulatorValueTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolAccumulatorValue,
		mcp.WithDescription("Get the accumulator's current value"),
	)
	return tool
}

// Handle processes the tool request
func (t *AccumulatorValueTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newJsonResult(results.AccumulatorState{
		Value: t.session.Value(),
	})
}
