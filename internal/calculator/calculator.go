package calculator

// Calculator validates operands, applies an operation and keeps an ordered
// history of every attempt. It is not safe for concurrent use; callers sharing
// one instance must serialise access themselves.
type Calculator struct {
	history []CalculationRecord
}

func New() *Calculator {
	return &Calculator{}
}

// Compute validates operands, dispatches kind and appends the resulting record
// to the history whether or not it succeeded. It never panics on bad input;
// failures are reported through the returned record.
func (c *Calculator) Compute(kind OperationKind, operands ...any) CalculationRecord {
	described := describeOperands(operands)

	rec := compute(kind, described, operands)
	c.history = append(c.history, rec)

	return rec.clone()
}

func compute(kind OperationKind, described []string, operands []any) CalculationRecord {
	if !kind.Valid() {
		return failureRecord(kind, described,
			newOperationError(UnknownOperation, kind, "unknown operation %q", string(kind)))
	}

	values, err := ValidateNumbers(operands...)
	if err != nil {
		return failureRecord(kind, described, err)
	}

	result, err := Dispatch(kind, values)
	if err != nil {
		return failureRecord(kind, described, err)
	}

	return successRecord(kind, described, result)
}

// History returns a copy of the recorded calculations, oldest first.
func (c *Calculator) History() []CalculationRecord {
	out := make([]CalculationRecord, len(c.history))
	for i, rec := range c.history {
		out[i] = rec.clone()
	}
	return out
}

// Len reports the number of records in the history.
func (c *Calculator) Len() int {
	return len(c.history)
}

// ClearHistory empties the history. Calling it on an empty history is a no-op.
func (c *Calculator) ClearHistory() {
	c.history = nil
}
