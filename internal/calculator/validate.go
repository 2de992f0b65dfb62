package calculator

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ValidateNumber converts input into a float64. Numeric values pass through,
// strings must parse as a decimal or scientific-notation number. Booleans, nil
// and any other type are rejected.
func ValidateNumber(input any) (float64, error) {
	switch v := input.(type) {
	case nil, bool:
		return 0, newOperationError(InvalidNumber, "", "invalid number: %v", input)
	case json.Number:
		input = v.String()
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, newOperationError(InvalidNumber, "", "invalid number: %q", v)
		}
		input = s
	}

	f, err := cast.ToFloat64E(input)
	if err != nil {
		// Out-of-range strings become ±Inf rather than being rejected.
		if s, ok := input.(string); ok {
			if v, perr := strconv.ParseFloat(s, 64); errors.Is(perr, strconv.ErrRange) {
				return v, nil
			}
		}
		return 0, newOperationError(InvalidNumber, "", "invalid number: %v", input)
	}
	return f, nil
}

// ValidateNumbers validates every input in order and stops at the first failure.
func ValidateNumbers(inputs ...any) ([]float64, error) {
	values := make([]float64, 0, len(inputs))
	for _, in := range inputs {
		f, err := ValidateNumber(in)
		if err != nil {
			return nil, err
		}
		values = append(values, f)
	}
	return values, nil
}
