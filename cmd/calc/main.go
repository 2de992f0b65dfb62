// Command calc is a command-line front end for the calculator core.
//
// Usage:
//
//	calc <operation> <operand>...   - Apply one operation and print the result
//	calc all <a> <b>                - Print add, subtract, multiply and divide of a and b
//	calc repl                       - Start an interactive session with history
//	calc ops                        - List supported operations
//	calc help                       - Show this help
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/observability"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	defaultLogs = "warn"
)

func main() {
	level := os.Getenv("CALC_LOG_LEVEL")
	if level == "" {
		level = defaultLogs
	}
	if err := observability.InitLogger(level, true); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(exitUsage)
	}
	defer observability.SyncLogger()

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	cmd := args[0]
	rest := args[1:]

	switch cmd {
	case "all":
		return cmdAll(rest, stdout, stderr)
	case "repl":
		return newREPL(calculator.New(), stdin, stdout).run()
	case "ops":
		printOperations(stdout)
		return exitOK
	case "help", "-h", "--help":
		printUsage(stdout)
		return exitOK
	default:
		return cmdCompute(cmd, rest, stdout, stderr)
	}
}

func cmdCompute(opName string, operands []string, stdout, stderr io.Writer) int {
	kind, err := calculator.ParseOperation(opName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printUsage(stderr)
		return exitUsage
	}

	rec := calculator.New().Compute(kind, toAny(operands)...)
	if !rec.Succeeded {
		observability.Logger.Debug("calculation failed",
			zap.String("operation", string(kind)),
			zap.String("error_kind", string(rec.ErrorKind)),
		)
		fmt.Fprintf(stderr, "Error: %s\n", calculator.FormatRecord(rec))
		return exitFailed
	}

	fmt.Fprintln(stdout, calculator.FormatRecord(rec))
	return exitOK
}

// cmdAll prints the four basic operations for a pair of numbers. A zero
// divisor only fails the division line.
func cmdAll(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "Error: all requires exactly 2 operands")
		return exitUsage
	}

	calc := calculator.New()
	status := exitOK

	for _, kind := range []calculator.OperationKind{calculator.Add, calculator.Subtract, calculator.Multiply, calculator.Divide} {
		rec := calc.Compute(kind, args[0], args[1])
		if rec.ErrorKind == calculator.InvalidNumber {
			fmt.Fprintf(stderr, "Error: %s\n", rec.ErrorMessage)
			return exitUsage
		}
		if !rec.Succeeded {
			fmt.Fprintf(stdout, "%s error: %s\n", kind.Label(), rec.ErrorMessage)
			status = exitFailed
			continue
		}
		result, _ := rec.Value()
		fmt.Fprintf(stdout, "%s is: %s\n", kind.Label(), calculator.FormatNumber(result))
	}

	return status
}

func printOperations(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSYMBOL\tDESCRIPTION\tOPERANDS")
	for _, info := range calculator.DescribeOperations() {
		operands := fmt.Sprintf("%d+", info.MinOperands)
		if info.MaxOperands != nil {
			operands = fmt.Sprintf("%d", *info.MaxOperands)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Name, info.Symbol, info.Label, operands)
	}
	tw.Flush()
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `calc - arithmetic calculator

Usage:
  calc <operation> <operand>...   Apply one operation and print the result
  calc all <a> <b>                Print add, subtract, multiply and divide of a and b
  calc repl                       Start an interactive session with history
  calc ops                        List supported operations
  calc help                       Show this help

Operations: add, subtract, multiply, divide, power, modulus, floor_divide, average
(aliases such as sub, mul, div, pow, mod, floordiv, avg are accepted)
`)
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
