package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "calc."

// Tool names
const (
	ToolCalculate        = ToolPrefix + "calculate"
	ToolAccumulatorApply = ToolPrefix + "accumulator_apply"
	ToolAccumulatorValue = ToolPrefix + "accumulator_value"
	ToolAccumulatorReset = ToolPrefix + "accumulator_reset"
)
