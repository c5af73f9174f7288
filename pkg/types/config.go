package types

// Config represents the configuration for the calc MCP server
type Config struct {
	InitialValue float64 `json:"initial_value,omitempty"`
	LogLevel     string  `json:"log_level,omitempty"`
}
