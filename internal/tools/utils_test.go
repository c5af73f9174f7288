package tools

import (
	"testing"

	"github.com/ewrenn/calc/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

func TestGetOperation(t *testing.T) {
	tests := []struct {
		name        string
		arguments   map[string]interface{}
		expected    results.Operation
		expectError bool
	}{
		{
			name: "Add operation",
			arguments: map[string]interface{}{
				"operation": "add",
			},
			expected: results.OperationAdd,
		},
		{
			name: "Divide operation",
			arguments: map[string]interface{}{
				"operation": "divide",
			},
			expected: results.OperationDivide,
		},
		{
			name:        "Missing operation",
			arguments:   map[string]interface{}{},
			expectError: true,
		},
		{
			name: "Unknown operation",
			arguments: map[string]interface{}{
				"operation": "modulo",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := mcp.CallToolRequest{}
			request.Params.Arguments = tt.arguments

			op, err := GetOperation(request)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, op)
			}
		})
	}
}

func TestGetFloat(t *testing.T) {
	tests := []struct {
		name        string
		arguments   map[string]interface{}
		key         string
		expected    float64
		expectError bool
	}{
		{
			name: "Present argument",
			arguments: map[string]interface{}{
				"a": float64(2.5),
			},
			key:      "a",
			expected: 2.5,
		},
		{
			name: "Present zero argument",
			arguments: map[string]interface{}{
				"operand": float64(0),
			},
			key:      "operand",
			expected: 0,
		},
		{
			name:        "Missing argument",
			arguments:   map[string]interface{}{},
			key:         "a",
			expectError: true,
		},
		{
			name: "Missing argument with others present",
			arguments: map[string]interface{}{
				"b": float64(1),
			},
			key:         "a",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := mcp.CallToolRequest{}
			request.Params.Arguments = tt.arguments

			value, err := GetFloat(request, tt.key)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, value)
			}
		})
	}
}
