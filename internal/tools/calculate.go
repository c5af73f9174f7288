package tools

import (
	"context"
	"fmt"

	"github.com/ewrenn/calc/internal/results"
	"github.com/ewrenn/calc/pkg/mathops"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculateTool handles stateless arithmetic requests
type CalculateTool struct{}

// NewCalculateTool creates a new calculation tool
func NewCalculateTool() *CalculateTool {
	return &CalculateTool{}
}

// GetTool returns the MCP tool definition
func (t *CalculateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolCalculate,
		mcp.WithDescription("Perform a single arithmetic operation on two numbers"),
		mcp.WithString("operation", mcp.Required(), mcp.Description("Operation to perform: add, subtract, multiply, or divide")),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand")),
	)
	return tool
}

// Handle processes the tool request
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	op, err := GetOperation(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a, err := GetFloat(req, "a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := GetFloat(req, "b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var result float64
	switch op {
	case results.OperationAdd:
		result = mathops.Add(a, b)
	case results.OperationSubtract:
		result = mathops.Subtract(a, b)
	case results.OperationMultiply:
		result = mathops.Multiply(a, b)
	case results.OperationDivide:
		result, err = mathops.Divide(a, b)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to divide: %v", err)), nil
		}
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported operation %q", op)), nil
	}

	return newJsonResult(results.CalculationResult{
		Operation: op,
		A:         a,
		B:         b,
		Result:    result,
	})
}
