package boolexpr

import (
	"fmt"
)

// endOfInput marks errors raised when the expression stops short, e.g. "A+".
// Positions in all errors are 0-based rune offsets into the expression.
const endOfInput rune = 0

// EmptyInputError is returned when the expression is empty or contains only
// whitespace.
type EmptyInputError struct{}

// NewEmptyInputError creates a new EmptyInputError.
func NewEmptyInputError() error {
	return &EmptyInputError{}
}

func (e EmptyInputError) Error() string {
	return "expression is empty"
}

// MalformedExpressionError is returned when a character outside the
// expression language is encountered, or when the expression ends where a
// value was expected.
type MalformedExpressionError struct {
	Position int
	Char     rune
}

// NewMalformedExpressionError creates a new MalformedExpressionError for the
// given position and character.
func NewMalformedExpressionError(position int, char rune) error {
	return &MalformedExpressionError{Position: position, Char: char}
}

func (e MalformedExpressionError) Error() string {
	if e.Char == endOfInput {
		return fmt.Sprintf("unexpected end of expression at position %d", e.Position)
	}
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Position)
}

// UnbalancedParenthesesError is returned when an opening parenthesis has no
// matching close. Position points at the unmatched '('.
type UnbalancedParenthesesError struct {
	Position int
}

// NewUnbalancedParenthesesError creates a new UnbalancedParenthesesError for
// the parenthesis opened at the given position.
func NewUnbalancedParenthesesError(position int) error {
	return &UnbalancedParenthesesError{Position: position}
}

func (e UnbalancedParenthesesError) Error() string {
	return fmt.Sprintf("missing closing parenthesis for '(' at position %d", e.Position)
}
