package calculator

// CalcRequest is the JSON body for POST /calculator/{operation}. Operands may
// be JSON numbers or numeric strings. The legacy {"a":..,"b":..} form is
// accepted when operands is absent.
type CalcRequest struct {
	Operands []any `json:"operands"`
	A        any   `json:"a,omitempty"`
	B        any   `json:"b,omitempty"`
}

func (r CalcRequest) values() []any {
	if r.Operands != nil {
		return r.Operands
	}
	var out []any
	if r.A != nil {
		out = append(out, r.A)
	}
	if r.B != nil {
		out = append(out, r.B)
	}
	return out
}

// ChainStep describes a single step in a chained calculation.
type ChainStep struct {
	Op    string `json:"op"`    // any name accepted by ParseOperation
	Value any    `json:"value"` // the operand applied with the running total
}

// ChainRequest is the JSON body for POST /calculator/chain.
type ChainRequest struct {
	Initial any         `json:"initial"` // starting value, 0 when absent
	Steps   []ChainStep `json:"steps"`
}

// ChainResponse is the JSON response for POST /calculator/chain. On failure
// Steps holds the completed steps and Failed the failing record.
type ChainResponse struct {
	Initial Number              `json:"initial"`
	Steps   []CalculationRecord `json:"steps"`
	Result  *Number             `json:"result,omitempty"`
	Failed  *CalculationRecord  `json:"failed,omitempty"`
}

// HistoryResponse is the JSON response for GET /calculator/history.
type HistoryResponse struct {
	Count   int                 `json:"count"`
	Records []CalculationRecord `json:"records"`
}

// OperationInfo describes one supported operation for GET /calculator/operations.
type OperationInfo struct {
	Name        OperationKind `json:"name"`
	Symbol      string        `json:"symbol"`
	Label       string        `json:"label"`
	MinOperands int           `json:"min_operands"`
	MaxOperands *int          `json:"max_operands,omitempty"` // absent when unbounded
}

// DescribeOperations returns the metadata of every supported operation.
func DescribeOperations() []OperationInfo {
	out := make([]OperationInfo, 0, len(Operations))
	for _, k := range Operations {
		min, max := k.Arity()
		info := OperationInfo{Name: k, Symbol: k.Symbol(), Label: k.Label(), MinOperands: min}
		if max >= 0 {
			info.MaxOperands = &max
		}
		out = append(out, info)
	}
	return out
}
