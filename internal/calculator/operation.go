package calculator

import "strings"

// OperationKind identifies one of the supported arithmetic operations.
type OperationKind string

const (
	Add         OperationKind = "add"
	Subtract    OperationKind = "subtract"
	Multiply    OperationKind = "multiply"
	Divide      OperationKind = "divide"
	Power       OperationKind = "power"
	Modulus     OperationKind = "modulus"
	FloorDivide OperationKind = "floor_divide"
	Average     OperationKind = "average"
)

// Operations lists every kind in display order.
var Operations = []OperationKind{Add, Subtract, Multiply, Divide, Power, Modulus, FloorDivide, Average}

type operationInfo struct {
	symbol string
	label  string
	// minOperands and maxOperands bound the operand count; maxOperands < 0 means unbounded.
	minOperands int
	maxOperands int
}

var operationTable = map[OperationKind]operationInfo{
	Add:         {symbol: "+", label: "Addition", minOperands: 0, maxOperands: -1},
	Subtract:    {symbol: "-", label: "Subtraction", minOperands: 1, maxOperands: -1},
	Multiply:    {symbol: "*", label: "Multiplication", minOperands: 0, maxOperands: -1},
	Divide:      {symbol: "/", label: "Division", minOperands: 2, maxOperands: 2},
	Power:       {symbol: "**", label: "Power", minOperands: 2, maxOperands: 2},
	Modulus:     {symbol: "%", label: "Modulus", minOperands: 2, maxOperands: 2},
	FloorDivide: {symbol: "//", label: "Floor Division", minOperands: 2, maxOperands: 2},
	Average:     {symbol: "avg", label: "Average", minOperands: 1, maxOperands: -1},
}

var operationAliases = map[string]OperationKind{
	"add":            Add,
	"addition":       Add,
	"sum":            Add,
	"+":              Add,
	"sub":            Subtract,
	"subtract":       Subtract,
	"subtraction":    Subtract,
	"-":              Subtract,
	"mul":            Multiply,
	"multiply":       Multiply,
	"multiplication": Multiply,
	"product":        Multiply,
	"*":              Multiply,
	"x":              Multiply,
	"div":            Divide,
	"divide":         Divide,
	"division":       Divide,
	"/":              Divide,
	"pow":            Power,
	"power":          Power,
	"**":             Power,
	"^":              Power,
	"mod":            Modulus,
	"modulus":        Modulus,
	"%":              Modulus,
	"floordiv":       FloorDivide,
	"floor_divide":   FloorDivide,
	"floor_division": FloorDivide,
	"floor-divide":   FloorDivide,
	"//":             FloorDivide,
	"avg":            Average,
	"average":        Average,
	"mean":           Average,
}

// ParseOperation resolves a user-supplied operation name, alias or symbol.
func ParseOperation(name string) (OperationKind, error) {
	kind, ok := operationAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", newOperationError(UnknownOperation, OperationKind(name), "unknown operation %q", name)
	}
	return kind, nil
}

// Valid reports whether k is one of the supported kinds.
func (k OperationKind) Valid() bool {
	_, ok := operationTable[k]
	return ok
}

// Symbol returns the operator symbol for k, or "?" for an unknown kind.
func (k OperationKind) Symbol() string {
	info, ok := operationTable[k]
	if !ok {
		return "?"
	}
	return info.symbol
}

// Label returns the human-readable name of k.
func (k OperationKind) Label() string {
	info, ok := operationTable[k]
	if !ok {
		return string(k)
	}
	return info.label
}

// Arity returns the minimum and maximum operand counts; max is -1 when unbounded.
func (k OperationKind) Arity() (min, max int) {
	info := operationTable[k]
	return info.minOperands, info.maxOperands
}

func (k OperationKind) String() string {
	return string(k)
}
