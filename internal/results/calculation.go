package results

// CalculationResult represents the JSON structure for a stateless calculation
type CalculationResult struct {
	Operation Operation `json:"operation"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Result    float64   `json:"result"`
}

// AccumulatorState represents the JSON structure for the accumulator session
type AccumulatorState struct {
	Operation Operation `json:"operation,omitempty"`
	Operand   *float64  `json:"operand,omitempty"`
	Value     float64   `json:"value"`
}
