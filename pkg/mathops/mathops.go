// Package mathops provides the four elementary arithmetic operations
// as pure functions over float64 operands.
package mathops

import "errors"

// ErrDivisionByZero is returned when a division's divisor is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns the difference of a and b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns the quotient of a divided by b.
// Returns ErrDivisionByZero if b is exactly zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
