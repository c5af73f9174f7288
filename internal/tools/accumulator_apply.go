package tools

import (
	"context"
	"fmt"

	"github.com/ewrenn/calc/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// AccumulatorApplyTool handles requests that mutate the accumulator session
type AccumulatorApplyTool struct {
	session *Session
}

// NewAccumulatorApplyTool creates a new accumulator mutation tool
func NewAccumulatorApplyTool(session *Session) *AccumulatorApplyTool {
	return &AccumulatorApplyTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *AccumulatorApplyTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolAccumulatorApply,
		mcp.WithDescription("Apply an arithmetic operation to the accumulator's current value"),
		mcp.WithString("operation", mcp.Required(), mcp.Description("Operation to apply: add, subtract, multiply, or divide")),
		mcp.WithNumber("operand", mcp.Required(), mcp.Description("Operand for the operation")),
	)
	return tool
}

// Handle processes the tool request
func (t *AccumulatorApplyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	op, err := GetOperation(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	operand, err := GetFloat(req, "operand")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	value, err := t.session.Apply(op, operand)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to apply %s: %v", op, err)), nil
	}

	return newJsonResult(results.AccumulatorState{
		Operation: op,
		Operand:   &operand,
		Value:     value,
	})
}
