package tools

import (
	"testing"

	"github.com/ewrenn/calc/internal/results"
	"github.com/ewrenn/calc/pkg/mathops"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionApply(t *testing.T) {
	tests := []struct {
		name        string
		initial     float64
		op          results.Operation
		operand     float64
		expected    float64
		expectError bool
	}{
		{
			name:     "Add",
			initial:  10,
			op:       results.OperationAdd,
			operand:  5,
			expected: 15,
		},
		{
			name:     "Subtract",
			initial:  10,
			op:       results.OperationSubtract,
			operand:  4,
			expected: 6,
		},
		{
			name:     "Multiply",
			initial:  6,
			op:       results.OperationMultiply,
			operand:  7,
			expected: 42,
		},
		{
			name:     "Divide",
			initial:  15,
			op:       results.OperationDivide,
			operand:  3,
			expected: 5,
		},
		{
			name:        "Divide by zero",
			initial:     10,
			op:          results.OperationDivide,
			operand:     0,
			expectError: true,
		},
		{
			name:        "Unknown operation",
			initial:     10,
			op:          results.OperationUnknown,
			operand:     1,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewSession(tt.initial)

			value, err := session.Apply(tt.op, tt.operand)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, tt.initial, session.Value(), "a failed apply must leave the session unchanged")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, value)
				assert.Equal(t, tt.expected, session.Value())
			}
		})
	}
}

func TestSessionApplyDivideByZeroError(t *testing.T) {
	session := NewSession(10)
	_, err := session.Apply(results.OperationDivide, 0)
	assert.ErrorIs(t, err, mathops.ErrDivisionByZero)
}

func TestSessionAccumulates(t *testing.T) {
	session := NewSession(10)

	_, err := session.Apply(results.OperationAdd, 5)
	require.NoError(t, err)
	_, err = session.Apply(results.OperationMultiply, 2)
	require.NoError(t, err)

	assert.Equal(t, 30.0, session.Value())
}

func TestSessionReset(t *testing.T) {
	session := NewSession(5)
	assert.Equal(t, 0.0, session.Reset())
	assert.Equal(t, 0.0, session.Value())
}
