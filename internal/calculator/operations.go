package calculator

import "math"

// AddValues sums values; the empty sum is 0.
func AddValues(values ...float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// SubtractValues subtracts every following value from the first.
func SubtractValues(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, newOperationError(InsufficientOperands, Subtract, "subtract requires at least 1 operand, got 0")
	}
	result := values[0]
	for _, v := range values[1:] {
		result -= v
	}
	return result, nil
}

// MultiplyValues multiplies values; the empty product is 1.
func MultiplyValues(values ...float64) float64 {
	product := 1.0
	for _, v := range values {
		product *= v
	}
	return product
}

// DivideValues returns a/b and fails with DivideByZero when b is zero.
func DivideValues(a, b float64) (float64, error) {
	if b == 0 {
		return 0, newOperationError(DivideByZero, Divide, "cannot divide by zero")
	}
	return a / b, nil
}

// PowerValues raises base to exponent with math.Pow semantics.
func PowerValues(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// ModulusValues returns the floating-point remainder of a/b. The result takes
// the sign of a.
func ModulusValues(a, b float64) (float64, error) {
	if b == 0 {
		return 0, newOperationError(ModulusByZero, Modulus, "cannot calculate modulus with zero divisor")
	}
	return math.Mod(a, b), nil
}

// FloorDivideValues returns floor(a/b) as an integral float64.
func FloorDivideValues(a, b float64) (float64, error) {
	if b == 0 {
		return 0, newOperationError(FloorDivideByZero, FloorDivide, "cannot perform floor division by zero")
	}
	return math.Floor(a / b), nil
}

// AverageValues returns the arithmetic mean of at least one value.
func AverageValues(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, newOperationError(InsufficientOperands, Average, "cannot calculate average of empty list")
	}
	return AddValues(values...) / float64(len(values)), nil
}

// Dispatch applies kind to already validated values.
func Dispatch(kind OperationKind, values []float64) (float64, error) {
	if !kind.Valid() {
		return 0, newOperationError(UnknownOperation, kind, "unknown operation %q", string(kind))
	}
	if err := checkArity(kind, len(values)); err != nil {
		return 0, err
	}

	switch kind {
	case Add:
		return AddValues(values...), nil
	case Subtract:
		return SubtractValues(values...)
	case Multiply:
		return MultiplyValues(values...), nil
	case Divide:
		return DivideValues(values[0], values[1])
	case Power:
		return PowerValues(values[0], values[1]), nil
	case Modulus:
		return ModulusValues(values[0], values[1])
	case FloorDivide:
		return FloorDivideValues(values[0], values[1])
	default:
		return AverageValues(values...)
	}
}

func checkArity(kind OperationKind, n int) error {
	min, max := kind.Arity()
	if n < min {
		return newOperationError(InsufficientOperands, kind,
			"%s requires at least %d operand(s), got %d", kind, min, n)
	}
	if max >= 0 && n > max {
		return newOperationError(TooManyOperands, kind,
			"%s accepts at most %d operand(s), got %d", kind, max, n)
	}
	return nil
}
