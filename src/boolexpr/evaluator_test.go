package boolexpr_test

import (
	"errors"
	"testing"

	"github.com/eriklarko/boolean-solver/src/boolexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiterals(t *testing.T) {
	tests := map[string]bool{
		"0": false,
		"1": true,
	}
	runEvaluatorTests(t, tests, nil)
}

func TestVariables(t *testing.T) {
	assignment := boolexpr.Assignment{
		'A': true,
		'B': false,
	}
	tests := map[string]bool{
		"A": true,
		"B": false,

		"!A": false,
		"!B": true,

		"A·B": false,
		"A+B": true,
	}
	runEvaluatorTests(t, tests, assignment)
}

func TestUnassignedVariablesAreTrue(t *testing.T) {
	// Variables without an assigned value are true. This is deliberate,
	// not an error path.
	tests := map[string]bool{
		"X":    true,
		"!X":   false,
		"X·Y":  true,
		"X·!Y": false,
	}
	runEvaluatorTests(t, tests, nil)
	runEvaluatorTests(t, tests, boolexpr.Assignment{'Z': false})
}

func TestNot(t *testing.T) {
	tests := map[string]bool{
		"!0":   true,
		"!1":   false,
		"!!1":  true,
		"!!!1": false,
	}
	runEvaluatorTests(t, tests, nil)
}

func TestAnd(t *testing.T) {
	tests := map[string]bool{
		"1·1": true,
		"1·0": false,
		"0·1": false,
		"0·0": false,
	}
	runEvaluatorTests(t, tests, nil)
}

func TestOr(t *testing.T) {
	tests := map[string]bool{
		"1+1": true,
		"1+0": true,
		"0+1": true,
		"0+0": false,
	}
	runEvaluatorTests(t, tests, nil)
}

func TestPrecedenceAndGrouping(t *testing.T) {
	tests := map[string]bool{
		// AND binds tighter than OR
		"1+0·0": true,
		"0·0+1": true,

		// parentheses override that
		"(1+0)·0": false,
		"0·(0+1)": false,

		"!(1+1)": false,
		"!0·1":   true,
	}
	runEvaluatorTests(t, tests, nil)
}

func TestWhitespaceIsInsignificant(t *testing.T) {
	tests := map[string]bool{
		"1 + 0":          true,
		" ( 1 + 0 ) · 1": true,
		"! 0":            true,
		"\tA · B\t":      false,
	}
	runEvaluatorTests(t, tests, boolexpr.Assignment{'B': false})
}

func TestLiteralOnlyExpressionsIgnoreAssignment(t *testing.T) {
	// Expressions without variables evaluate the same no matter what
	// assignment is supplied.
	expressions := []string{"1", "0", "1·(0+1)", "!(0·1)+0"}
	assignments := []boolexpr.Assignment{
		nil,
		{'A': false},
		{'A': true, 'B': false},
	}

	for _, expression := range expressions {
		t.Run(expression, func(t *testing.T) {
			baseline, err := boolexpr.Evaluate(expression, nil)
			require.NoError(t, err)

			for _, assignment := range assignments {
				result, err := boolexpr.Evaluate(expression, assignment)
				require.NoError(t, err)
				assert.Equal(t, baseline, result)
			}
		})
	}
}

func TestBooleanLaws(t *testing.T) {
	assignments := []boolexpr.Assignment{
		{'A': true, 'B': true},
		{'A': true, 'B': false},
		{'A': false, 'B': true},
		{'A': false, 'B': false},
	}

	for _, assignment := range assignments {
		// contradiction and excluded middle
		result, err := boolexpr.Evaluate("A·!A", assignment)
		require.NoError(t, err)
		assert.False(t, result, "A·!A must be false for A=%v", assignment['A'])

		result, err = boolexpr.Evaluate("A+!A", assignment)
		require.NoError(t, err)
		assert.True(t, result, "A+!A must be true for A=%v", assignment['A'])

		// De Morgan
		lhs, err := boolexpr.Evaluate("!(A·B)", assignment)
		require.NoError(t, err)
		rhs, err := boolexpr.Evaluate("!A+!B", assignment)
		require.NoError(t, err)
		assert.Equal(t, lhs, rhs, "De Morgan failed for %v", assignment)
	}
}

func runEvaluatorTests(t *testing.T, tests map[string]bool, assignment boolexpr.Assignment) {
	t.Helper()
	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			result, err := boolexpr.Evaluate(expression, assignment)
			require.NoError(t, err)
			assert.Equal(t, expected, result)
		})
	}
}

func TestEmptyInput(t *testing.T) {
	for _, expression := range []string{"", "   ", "\t\n"} {
		_, err := boolexpr.Evaluate(expression, nil)

		var emptyErr *boolexpr.EmptyInputError
		assert.ErrorAs(t, err, &emptyErr)
	}
}

func TestUnrecognizedCharacter(t *testing.T) {
	tests := map[string]int{
		"A&B":   1, // wrong AND operator
		"A·B?":  3, // trailing junk after a factor
		"#":     0,
		"A + 2": 4, // only 0 and 1 are literals
	}

	for expression, position := range tests {
		t.Run(expression, func(t *testing.T) {
			_, err := boolexpr.Evaluate(expression, nil)

			var malformedErr *boolexpr.MalformedExpressionError
			require.ErrorAs(t, err, &malformedErr)
			assert.Equal(t, position, malformedErr.Position)
		})
	}
}

func TestTrailingInputIsRejected(t *testing.T) {
	// a complete expression followed by a stray close paren
	_, err := boolexpr.Evaluate("A·B)", nil)

	var malformedErr *boolexpr.MalformedExpressionError
	require.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, 3, malformedErr.Position)
}

func TestUnexpectedEndOfExpression(t *testing.T) {
	for _, expression := range []string{"A+", "!", "1·"} {
		t.Run(expression, func(t *testing.T) {
			_, err := boolexpr.Evaluate(expression, nil)

			var malformedErr *boolexpr.MalformedExpressionError
			require.ErrorAs(t, err, &malformedErr)
			assert.Contains(t, err.Error(), "unexpected end of expression")
		})
	}
}

func TestUnbalancedParentheses(t *testing.T) {
	tests := map[string]int{
		"(A·B":     0,
		"A+(B·!C":  2,
		"((A)":     0,
		"(A·(B+C)": 0,
	}

	for expression, position := range tests {
		t.Run(expression, func(t *testing.T) {
			_, err := boolexpr.Evaluate(expression, nil)

			var parenErr *boolexpr.UnbalancedParenthesesError
			require.ErrorAs(t, err, &parenErr)
			assert.Equal(t, position, parenErr.Position, "expected the position of the unmatched '('")
		})
	}
}

func TestErrorsAreDistinguishable(t *testing.T) {
	// callers branch on error kind with errors.As, so the kinds must not
	// overlap
	_, err := boolexpr.Evaluate("(1", nil)

	var malformedErr *boolexpr.MalformedExpressionError
	assert.False(t, errors.As(err, &malformedErr))

	var parenErr *boolexpr.UnbalancedParenthesesError
	assert.True(t, errors.As(err, &parenErr))
}
