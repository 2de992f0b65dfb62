package calculator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CalculationRecord is the immutable outcome of one Compute call.
// Succeeded is true iff Result is non-nil and ErrorMessage is empty.
type CalculationRecord struct {
	Operation    OperationKind `json:"operation"`
	Operands     []string      `json:"operands"`
	Result       *float64      `json:"result,omitempty"`
	Succeeded    bool          `json:"succeeded"`
	ErrorKind    ErrorKind     `json:"error_kind,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

func successRecord(op OperationKind, operands []string, result float64) CalculationRecord {
	return CalculationRecord{
		Operation: op,
		Operands:  operands,
		Result:    &result,
		Succeeded: true,
	}
}

func failureRecord(op OperationKind, operands []string, err error) CalculationRecord {
	kind, ok := KindOf(err)
	if !ok {
		kind = InvalidNumber
	}
	return CalculationRecord{
		Operation:    op,
		Operands:     operands,
		ErrorKind:    kind,
		ErrorMessage: err.Error(),
	}
}

// Value returns the result and whether the record succeeded.
func (r CalculationRecord) Value() (float64, bool) {
	if r.Result == nil {
		return 0, false
	}
	return *r.Result, true
}

// Err reconstructs the failure as an *OperationError, or nil on success.
func (r CalculationRecord) Err() error {
	if r.Succeeded {
		return nil
	}
	return &OperationError{Kind: r.ErrorKind, Op: r.Operation, Msg: r.ErrorMessage}
}

func (r CalculationRecord) clone() CalculationRecord {
	c := r
	c.Operands = append([]string(nil), r.Operands...)
	if r.Result != nil {
		v := *r.Result
		c.Result = &v
	}
	return c
}

// MarshalJSON writes non-finite results as "NaN", "+Inf" or "-Inf" strings so
// that every record is encodable.
func (r CalculationRecord) MarshalJSON() ([]byte, error) {
	type plain CalculationRecord
	return json.Marshal(struct {
		plain
		Result *Number `json:"result,omitempty"`
	}{
		plain:  plain(r),
		Result: (*Number)(r.Result),
	})
}

// Number is a float64 whose JSON form is a plain number when finite and one of
// the strings "NaN", "+Inf" or "-Inf" otherwise.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if isNonFinite(f) {
		return json.Marshal(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return json.Marshal(f)
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// FormatRecord renders a record as a single console line.
func FormatRecord(r CalculationRecord) string {
	if !r.Succeeded {
		return fmt.Sprintf("%s: %s", r.Operation, r.ErrorMessage)
	}
	result, _ := r.Value()
	return fmt.Sprintf("%s applied to [%s] = %s", r.Operation.Symbol(), strings.Join(r.Operands, " "), FormatNumber(result))
}

// FormatNumber formats f in the shortest representation that round-trips.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func describeOperand(in any) string {
	switch v := in.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return FormatNumber(v)
	case float32:
		return FormatNumber(float64(v))
	case json.Number:
		return v.String()
	}
	return fmt.Sprint(in)
}

func describeOperands(inputs []any) []string {
	out := make([]string, len(inputs))
	for i, in := range inputs {
		out[i] = describeOperand(in)
	}
	return out
}
