// Command calcdemo prints example invocations of the arithmetic
// functions and a chained accumulator run. It performs no logic beyond
// calling the library and formatting text.
package main

import (
	"fmt"

	"github.com/ewrenn/calc/pkg/accumulator"
	"github.com/ewrenn/calc/pkg/mathops"
)

func main() {
	fmt.Println("Function examples:")
	fmt.Printf("Add(5, 3) = %v\n", mathops.Add(5, 3))
	fmt.Printf("Subtract(10, 4) = %v\n", mathops.Subtract(10, 4))
	fmt.Printf("Multiply(6, 7) = %v\n", mathops.Multiply(6, 7))

	quotient, err := mathops.Divide(15, 3)
	if err != nil {
		fmt.Printf("Divide(15, 3) failed: %v\n", err)
	} else {
		fmt.Printf("Divide(15, 3) = %v\n", quotient)
	}

	fmt.Println("\nAccumulator example:")
	acc := accumulator.New(10)
	acc.Add(5).Multiply(2).Subtract(3)
	fmt.Printf("New(10).Add(5).Multiply(2).Subtract(3) = %v\n", acc.Value())

	if _, err := acc.Divide(0); err != nil {
		fmt.Printf("Divide(0) failed: %v\n", err)
	}
	fmt.Printf("Value after failed divide: %v\n", acc.Value())
	fmt.Println(acc)
}
