// Package accumulator provides a mutable container holding one float64
// value, with chainable arithmetic methods that mutate it in place.
//
// An Accumulator is not safe for concurrent use; callers sharing one
// instance across goroutines must synchronize externally.
package accumulator

import (
	"fmt"

	"github.com/ewrenn/calc/pkg/mathops"
)

// Accumulator holds a running value mutated by chained operations.
// The zero value is an accumulator holding 0.
type Accumulator struct {
	value float64
}

// New creates an Accumulator holding the given initial value.
func New(initial float64) *Accumulator {
	return &Accumulator{value: initial}
}

// Value returns the currently held value.
func (a *Accumulator) Value() float64 {
	return a.value
}

// SetValue replaces the held value and returns the receiver for chaining.
func (a *Accumulator) SetValue(v float64) *Accumulator {
	a.value = v
	return a
}

// Add adds n to the held value and returns the receiver for chaining.
func (a *Accumulator) Add(n float64) *Accumulator {
	a.value = mathops.Add(a.value, n)
	return a
}

// Subtract subtracts n from the held value and returns the receiver for chaining.
func (a *Accumulator) Subtract(n float64) *Accumulator {
	a.value = mathops.Subtract(a.value, n)
	return a
}

// Multiply multiplies the held value by n and returns the receiver for chaining.
func (a *Accumulator) Multiply(n float64) *Accumulator {
	a.value = mathops.Multiply(a.value, n)
	return a
}

// Divide divides the held value by n and returns the receiver for chaining.
// Returns mathops.ErrDivisionByZero if n is exactly zero, leaving the
// held value unchanged.
func (a *Accumulator) Divide(n float64) (*Accumulator, error) {
	quotient, err := mathops.Divide(a.value, n)
	if err != nil {
		return a, err
	}
	a.value = quotient
	return a, nil
}

// Reset sets the held value to zero and returns the receiver for chaining.
func (a *Accumulator) Reset() *Accumulator {
	a.value = 0
	return a
}

// String returns a display representation of the accumulator.
func (a *Accumulator) String() string {
	return fmt.Sprintf("Accumulator(value=%v)", a.value)
}
