package tools

import (
	"encoding/json"
	"fmt"

	"github.com/ewrenn/calc/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetOperation extracts and validates the operation argument from an MCP request
func GetOperation(req mcp.CallToolRequest) (results.Operation, error) {
	name := mcp.ParseString(req, "operation", "")
	if name == "" {
		return results.OperationUnknown, fmt.Errorf("operation parameter is required")
	}

	op := results.NewOperation(name)
	if op == results.OperationUnknown {
		return results.OperationUnknown, fmt.Errorf("unknown operation %q", name)
	}
	return op, nil
}

// GetFloat extracts a required numeric argument from an MCP request
func GetFloat(req mcp.CallToolRequest, key string) (float64, error) {
	if _, ok := req.GetArguments()[key]; !ok {
		return 0, fmt.Errorf("%s parameter is required", key)
	}
	return mcp.ParseFloat64(req, key, 0), nil
}

// newJsonResult marshals a result struct into an MCP text result
func newJsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
