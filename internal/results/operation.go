package results

// Operation represents an arithmetic operation as an enum
type Operation string

const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationMultiply Operation = "multiply"
	OperationDivide   Operation = "divide"
	OperationUnknown  Operation = "unknown"
)

var operationMap = map[string]Operation{
	"add":      OperationAdd,
	"subtract": OperationSubtract,
	"multiply": OperationMultiply,
	"divide":   OperationDivide,
}

// NewOperation returns the Operation for a given operation name
func NewOperation(name string) Operation {
	op, ok := operationMap[name]
	if !ok {
		return OperationUnknown
	}
	return op
}

// String returns the string representation of the operation
func (o Operation) String() string {
	return string(o)
}
