// Package truthtable enumerates every assignment of an expression's
// variables and records what the expression evaluates to for each one.
package truthtable

import (
	"fmt"

	"github.com/eriklarko/boolean-solver/src/boolexpr"
)

// DefaultVariableLimit caps how many distinct variables Build accepts. The
// table has 2^n rows for n variables, so even modest expressions get big
// fast; 20 variables is already a million rows. Use BuildWithLimit to pick
// a different cap.
const DefaultVariableLimit = 20

// Row is one line of a truth table: the values given to each variable, in
// the same order as Table.Variables, and what the expression evaluated to.
type Row struct {
	Inputs []bool
	Result bool
}

// Table is a full truth table for one expression. Rows are ordered by
// counting up through the variable values with the first-discovered variable
// in the most significant position, so the first row assigns false to
// everything and the last row assigns true to everything. The order is
// deterministic: building the same expression twice gives identical tables.
type Table struct {
	Expression string
	Variables  []rune
	Rows       []Row
}

// Build constructs the truth table for the expression using
// DefaultVariableLimit.
func Build(expression string) (*Table, error) {
	return BuildWithLimit(expression, DefaultVariableLimit)
}

// BuildWithLimit constructs the truth table for the expression, failing with
// a TooManyVariablesError if the expression references more than limit
// distinct variables. An expression without variables yields a single row
// holding just the result.
func BuildWithLimit(expression string, limit int) (*Table, error) {
	variables := boolexpr.Variables(expression)
	if len(variables) > limit {
		return nil, NewTooManyVariablesError(limit, len(variables))
	}

	table := &Table{
		Expression: expression,
		Variables:  variables,
		Rows:       make([]Row, 0, 1<<len(variables)),
	}

	for i := 0; i < 1<<len(variables); i++ {
		assignment := make(boolexpr.Assignment, len(variables))
		inputs := make([]bool, len(variables))
		for j, variable := range variables {
			// first-discovered variable takes the most significant bit
			value := (i>>(len(variables)-j-1))&1 == 1
			assignment[variable] = value
			inputs[j] = value
		}

		result, err := boolexpr.Evaluate(expression, assignment)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate expression '%s': %w", expression, err)
		}

		table.Rows = append(table.Rows, Row{Inputs: inputs, Result: result})
	}

	return table, nil
}
