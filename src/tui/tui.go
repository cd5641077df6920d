// Package tui is the terminal side of the solver: prompting for an
// expression and rendering results as plain text.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eriklarko/boolean-solver/src/environment"
	"github.com/eriklarko/boolean-solver/src/truthtable"
)

type TUI struct {
	input  io.Reader
	output io.Writer
}

func New() *TUI {
	return &TUI{
		input:  os.Stdin,
		output: os.Stdout,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = input
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// PromptExpression reads one line from the input and returns it with the
// trailing line terminator stripped. The prompt itself is only printed for
// interactive users, so `echo 'A·B' | boolean-solver` stays clean.
func (t *TUI) PromptExpression() (string, error) {
	if environment.IsInteractive() {
		fmt.Fprintln(t.output, "Enter a boolean expression ('+' for OR, '·' for AND, '!' for NOT):")
	}

	reader := bufio.NewReader(t.input)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read expression: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ShowResult prints the outcome of a single evaluation.
func (t *TUI) ShowResult(result bool) {
	fmt.Fprintf(t.output, "Evaluation Result: %s\n", formatBool(result))
}

// ShowTable prints the truth table as tab-separated columns, one variable
// per column plus the result, followed by a summary line.
func (t *TUI) ShowTable(table *truthtable.Table) {
	fmt.Fprintln(t.output, "Truth Table:")
	for _, variable := range table.Variables {
		fmt.Fprintf(t.output, "%c\t", variable)
	}
	fmt.Fprintln(t.output, "Result")

	for _, row := range table.Rows {
		for _, input := range row.Inputs {
			fmt.Fprintf(t.output, "%s\t", formatBool(input))
		}
		fmt.Fprintln(t.output, formatBool(row.Result))
	}

	summary := table.Summarize()
	fmt.Fprintf(t.output, "\nTrue in %d of %d rows.\n", summary.TrueCount, summary.Rows)
}

func formatBool(value bool) string {
	if value {
		return "1"
	}
	return "0"
}
