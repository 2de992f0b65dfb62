package calculator

import (
	"strings"
	"testing"
)

func TestComputeSuccess(t *testing.T) {
	tests := []struct {
		name     string
		kind     OperationKind
		operands []any
		want     float64
	}{
		{name: "add", kind: Add, operands: []any{4, 7}, want: 11},
		{name: "add strings", kind: Add, operands: []any{"4", "7"}, want: 11},
		{name: "subtract", kind: Subtract, operands: []any{10, 4}, want: 6},
		{name: "multiply", kind: Multiply, operands: []any{6, 7}, want: 42},
		{name: "divide", kind: Divide, operands: []any{15, 3}, want: 5},
		{name: "power", kind: Power, operands: []any{2, 10}, want: 1024},
		{name: "modulus", kind: Modulus, operands: []any{17, 5}, want: 2},
		{name: "floor divide", kind: FloorDivide, operands: []any{17, 5}, want: 3},
		{name: "average", kind: Average, operands: []any{10, "20", 30.0, "4e1"}, want: 25},
		{name: "empty add", kind: Add, operands: nil, want: 0},
		{name: "empty multiply", kind: Multiply, operands: nil, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calc := New()
			rec := calc.Compute(tc.kind, tc.operands...)

			if !rec.Succeeded {
				t.Fatalf("expected success, got error %q", rec.ErrorMessage)
			}
			got, ok := rec.Value()
			if !ok || got != tc.want {
				t.Fatalf("expected result %v, got %v (present=%t)", tc.want, got, ok)
			}
			if rec.ErrorMessage != "" || rec.ErrorKind != "" {
				t.Fatalf("expected no error fields, got kind=%q msg=%q", rec.ErrorKind, rec.ErrorMessage)
			}
			if rec.Operation != tc.kind {
				t.Fatalf("expected operation %s, got %s", tc.kind, rec.Operation)
			}
			if len(rec.Operands) != len(tc.operands) {
				t.Fatalf("expected %d operands, got %d", len(tc.operands), len(rec.Operands))
			}
		})
	}
}

func TestComputeFailure(t *testing.T) {
	tests := []struct {
		name     string
		kind     OperationKind
		operands []any
		wantKind ErrorKind
		contains string
	}{
		{name: "divide by zero", kind: Divide, operands: []any{1, 0}, wantKind: DivideByZero, contains: "zero"},
		{name: "modulus by zero", kind: Modulus, operands: []any{10, "0"}, wantKind: ModulusByZero, contains: "zero"},
		{name: "floor divide by zero", kind: FloorDivide, operands: []any{10, 0.0}, wantKind: FloorDivideByZero, contains: "zero"},
		{name: "invalid operand", kind: Add, operands: []any{"invalid", 5}, wantKind: InvalidNumber, contains: "invalid"},
		{name: "invalid beats zero divisor", kind: Divide, operands: []any{"abc", 0}, wantKind: InvalidNumber, contains: "abc"},
		{name: "insufficient", kind: Power, operands: []any{2}, wantKind: InsufficientOperands, contains: "at least 2"},
		{name: "too many", kind: Divide, operands: []any{8, 2, 2}, wantKind: TooManyOperands, contains: "at most 2"},
		{name: "unknown", kind: OperationKind("root"), operands: []any{4, 2}, wantKind: UnknownOperation, contains: "root"},
		{name: "empty average", kind: Average, operands: nil, wantKind: InsufficientOperands, contains: "average"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calc := New()
			rec := calc.Compute(tc.kind, tc.operands...)

			if rec.Succeeded {
				t.Fatal("expected failure")
			}
			if rec.Result != nil {
				t.Fatalf("expected absent result, got %v", *rec.Result)
			}
			if rec.ErrorKind != tc.wantKind {
				t.Fatalf("expected kind %s, got %s", tc.wantKind, rec.ErrorKind)
			}
			if !strings.Contains(rec.ErrorMessage, tc.contains) {
				t.Fatalf("expected message containing %q, got %q", tc.contains, rec.ErrorMessage)
			}
			if calc.Len() != 1 {
				t.Fatalf("expected failed attempt in history, got %d records", calc.Len())
			}
		})
	}
}

func TestHistoryTracksEveryCompute(t *testing.T) {
	calc := New()

	calc.Compute(Add, 1, 2)
	calc.Compute(Multiply, 3, 4)
	calc.Compute(Divide, 10, 0)
	calc.Compute(Divide, 10, 2)

	history := calc.History()
	if len(history) != 4 {
		t.Fatalf("expected 4 records, got %d", len(history))
	}

	wantOps := []OperationKind{Add, Multiply, Divide, Divide}
	for i, op := range wantOps {
		if history[i].Operation != op {
			t.Fatalf("record %d: expected %s, got %s", i, op, history[i].Operation)
		}
	}
	if history[2].Succeeded || !history[3].Succeeded {
		t.Fatal("expected only the divide by zero to fail")
	}
}

func TestHistoryLengthEqualsComputeCount(t *testing.T) {
	calc := New()
	for i := 0; i < 25; i++ {
		calc.Compute(Add, i, i)
	}
	if got := len(calc.History()); got != 25 {
		t.Fatalf("expected 25 records, got %d", got)
	}

	calc.ClearHistory()
	if got := len(calc.History()); got != 0 {
		t.Fatalf("expected empty history after clear, got %d", got)
	}

	calc.ClearHistory()
	if calc.Len() != 0 {
		t.Fatalf("expected clear to be idempotent, got %d", calc.Len())
	}

	calc.Compute(Subtract, 3, 1)
	if calc.Len() != 1 {
		t.Fatalf("expected history to grow again after clear, got %d", calc.Len())
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	calc := New()
	calc.Compute(Add, 4, 7)

	snapshot := calc.History()
	snapshot[0].Operation = Subtract
	snapshot[0].Operands[0] = "999"
	*snapshot[0].Result = -1

	fresh := calc.History()
	if len(fresh) != 1 {
		t.Fatalf("expected 1 record, got %d", len(fresh))
	}
	if fresh[0].Operation != Add || fresh[0].Operands[0] != "4" {
		t.Fatalf("history was mutated through snapshot: %+v", fresh[0])
	}
	if got, _ := fresh[0].Value(); got != 11 {
		t.Fatalf("history result was mutated through snapshot: %v", got)
	}
}

func TestComputeReturnedRecordIsDetached(t *testing.T) {
	calc := New()
	rec := calc.Compute(Multiply, 2, 3)
	*rec.Result = 0
	rec.Operands[0] = "x"

	stored := calc.History()[0]
	if got, _ := stored.Value(); got != 6 || stored.Operands[0] != "2" {
		t.Fatalf("stored record changed through returned record: %+v", stored)
	}
}

func TestRecordErrRoundTrip(t *testing.T) {
	calc := New()

	if err := calc.Compute(Add, 1, 1).Err(); err != nil {
		t.Fatalf("expected nil error for success, got %v", err)
	}

	err := calc.Compute(Divide, 1, 0).Err()
	if kind, ok := KindOf(err); !ok || kind != DivideByZero {
		t.Fatalf("expected DivideByZero, got %v", err)
	}
}
