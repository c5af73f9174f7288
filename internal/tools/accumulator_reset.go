package tools

import (
	"context"

	"github.com/ewrenn/calc/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// AccumulatorResetTool handles accumulator reset requests
type AccumulatorResetTool struct {
	session *Session
}

// NewAccumulatorResetTool creates a new accumulator reset tool
func NewAccumulatorResetTool(session *Session) *AccumulatorResetTool {
	return &AccumulatorResetTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *AccumulatorResetTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolAccumulatorReset,
		mcp.WithDescription("Reset the accumulator's value to zero"),
	)
	return tool
}

// Handle processes the tool request
func (t *AccumulatorResetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return newJsonResult(results.AccumulatorState{
		Value: t.session.Reset(),
	})
}
