package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go-chi-calculator/internal/calculator"
)

const prompt = "calc> "

type repl struct {
	calc *calculator.Calculator
	in   *bufio.Scanner
	out  io.Writer
}

func newREPL(calc *calculator.Calculator, in io.Reader, out io.Writer) *repl {
	return &repl{calc: calc, in: bufio.NewScanner(in), out: out}
}

// run reads commands until quit or end of input. Bad lines are reported and
// the session continues.
func (r *repl) run() int {
	fmt.Fprintln(r.out, "Interactive calculator. Type 'help' for commands.")

	for {
		fmt.Fprint(r.out, prompt)
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			break
		}

		fields := strings.Fields(r.in.Text())
		if len(fields) == 0 {
			continue
		}

		if !r.handle(fields[0], fields[1:]) {
			break
		}
	}

	if err := r.in.Err(); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return exitFailed
	}
	return exitOK
}

func (r *repl) handle(cmd string, args []string) bool {
	switch strings.ToLower(cmd) {
	case "quit", "exit", "q":
		fmt.Fprintln(r.out, "Goodbye.")
		return false
	case "help", "?":
		r.printHelp()
	case "ops":
		printOperations(r.out)
	case "history":
		r.printHistory()
	case "clear":
		r.calc.ClearHistory()
		fmt.Fprintln(r.out, "History cleared.")
	default:
		kind, err := calculator.ParseOperation(cmd)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return true
		}
		rec := r.calc.Compute(kind, toAny(args)...)
		if rec.Succeeded {
			fmt.Fprintln(r.out, calculator.FormatRecord(rec))
		} else {
			fmt.Fprintf(r.out, "Error: %s\n", calculator.FormatRecord(rec))
		}
	}
	return true
}

func (r *repl) printHistory() {
	history := r.calc.History()
	if len(history) == 0 {
		fmt.Fprintln(r.out, "No calculations yet.")
		return
	}
	for i, rec := range history {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, calculator.FormatRecord(rec))
	}
}

func (r *repl) printHelp() {
	fmt.Fprint(r.out, `Commands:
  <operation> <operand>...   e.g. "add 1 2 3", "div 10 4", "pow 2 10"
  history                    show calculations in this session
  clear                      clear the history
  ops                        list operations
  quit                       leave
`)
}
