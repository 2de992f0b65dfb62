package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunCompute(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"add", "4", "7"}, want: "+ applied to [4 7] = 11\n"},
		{args: []string{"sub", "4", "7"}, want: "- applied to [4 7] = -3\n"},
		{args: []string{"mul", "2", "3", "4"}, want: "* applied to [2 3 4] = 24\n"},
		{args: []string{"pow", "2", "10"}, want: "** applied to [2 10] = 1024\n"},
		{args: []string{"floordiv", "17", "5"}, want: "// applied to [17 5] = 3\n"},
		{args: []string{"mod", "-7", "3"}, want: "% applied to [-7 3] = -1\n"},
		{args: []string{"avg", "10", "20", "30", "40"}, want: "avg applied to [10 20 30 40] = 25\n"},
		{args: []string{"divide", "1e3", "8"}, want: "/ applied to [1e3 8] = 125\n"},
	}

	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "", tc.args...)
			if code != exitOK {
				t.Fatalf("expected exit %d, got %d (stderr %q)", exitOK, code, stderr)
			}
			if stdout != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, stdout)
			}
		})
	}
}

func TestRunComputeFailures(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "div", "1", "0")
	if code != exitFailed {
		t.Fatalf("expected exit %d, got %d", exitFailed, code)
	}
	if stdout != "" {
		t.Fatalf("expected empty stdout, got %q", stdout)
	}
	if stderr != "Error: divide: cannot divide by zero\n" {
		t.Fatalf("unexpected stderr %q", stderr)
	}

	code, _, stderr = runCLI(t, "", "add", "abc", "1")
	if code != exitFailed || !strings.Contains(stderr, "invalid number: abc") {
		t.Fatalf("expected invalid number failure, got %d %q", code, stderr)
	}

	code, _, stderr = runCLI(t, "", "sqrt", "4")
	if code != exitUsage || !strings.Contains(stderr, `unknown operation "sqrt"`) {
		t.Fatalf("expected usage failure, got %d %q", code, stderr)
	}

	code, _, _ = runCLI(t, "")
	if code != exitUsage {
		t.Fatalf("expected exit %d without arguments, got %d", exitUsage, code)
	}
}

func TestRunAll(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "all", "4", "7")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	want := "Addition is: 11\nSubtraction is: -3\nMultiplication is: 28\nDivision is: 0.5714285714285714\n"
	if stdout != want {
		t.Fatalf("expected %q, got %q", want, stdout)
	}

	code, stdout, _ = runCLI(t, "", "all", "4", "0")
	if code != exitFailed {
		t.Fatalf("expected exit %d, got %d", exitFailed, code)
	}
	if !strings.Contains(stdout, "Multiplication is: 0\n") || !strings.Contains(stdout, "Division error: cannot divide by zero\n") {
		t.Fatalf("unexpected output %q", stdout)
	}

	code, _, _ = runCLI(t, "", "all", "4")
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}

	code, stdout, stderr := runCLI(t, "", "all", "x", "1")
	if code != exitUsage || stdout != "" || !strings.Contains(stderr, "invalid number: x") {
		t.Fatalf("expected invalid operand failure, got %d %q %q", code, stdout, stderr)
	}
}

func TestRunOpsAndHelp(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "ops")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	for _, name := range []string{"add", "floor_divide", "Floor Division", "average"} {
		if !strings.Contains(stdout, name) {
			t.Fatalf("expected %q in operations list, got %q", name, stdout)
		}
	}

	code, stdout, _ = runCLI(t, "", "help")
	if code != exitOK || !strings.Contains(stdout, "Usage:") {
		t.Fatalf("expected usage text, got %d %q", code, stdout)
	}
}

func TestREPLSession(t *testing.T) {
	input := strings.Join([]string{
		"add 1 2 3",
		"",
		"div 1 0",
		"cube 3",
		"history",
		"clear",
		"history",
		"quit",
		"add 5 5",
	}, "\n")

	code, stdout, _ := runCLI(t, input, "repl")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}

	for _, want := range []string{
		"+ applied to [1 2 3] = 6\n",
		"Error: divide: cannot divide by zero\n",
		`Error: unknown operation "cube"`,
		"1. + applied to [1 2 3] = 6\n2. divide: cannot divide by zero\n",
		"History cleared.\n",
		"No calculations yet.\n",
		"Goodbye.\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in session output:\n%s", want, stdout)
		}
	}

	if strings.Contains(stdout, "[5 5]") {
		t.Fatal("expected input after quit to be ignored")
	}
}

func TestREPLEndsOnEOF(t *testing.T) {
	code, stdout, _ := runCLI(t, "mul 3 4", "repl")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if !strings.Contains(stdout, "* applied to [3 4] = 12\n") {
		t.Fatalf("unexpected output %q", stdout)
	}
}
