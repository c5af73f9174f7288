package tools

import (
	"fmt"
	"sync"

	"github.com/ewrenn/calc/internal/results"
	"github.com/ewrenn/calc/pkg/accumulator"
)

// Session guards the accumulator shared across tool calls. The
// accumulator itself is not goroutine-safe, so all access goes
// through the session lock.
type Session struct {
	mu  sync.Mutex
	acc *accumulator.Accumulator
}

// NewSession creates a session holding an accumulator with the given initial value
func NewSession(initial float64) *Session {
	return &Session{
		acc: accumulator.New(initial),
	}
}

// Apply applies an operation to the session accumulator and returns the new value
func (s *Session) Apply(op results.Operation, operand float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch op {
	case results.OperationAdd:
		s.acc.Add(operand)
	case results.OperationSubtract:
		s.acc.Subtract(operand)
	case results.OperationMultiply:
		s.acc.Multiply(operand)
	case results.OperationDivide:
		if _, err := s.acc.Divide(operand); err != nil {
			return s.acc.Value(), err
		}
	default:
		return s.acc.Value(), fmt.Errorf("unknown operation %q", op)
	}

	return s.acc.Value(), nil
}

// Value returns the current accumulator value
func (s *Session) Value() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.acc.Value()
}

// Reset resets the accumulator to zero and returns the new value
func (s *Session) Reset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.acc.Reset().Value()
}
