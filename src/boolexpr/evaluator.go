package boolexpr

import (
	"strings"
	"unicode"
)

// The grammar, from loosest to tightest binding:
//
//	expression := term ( '+' term )*
//	term       := factor ( '·' factor )*
//	factor     := '!' factor | '(' expression ')' | '0' | '1' | variable
//
// Values are computed during the descent; no syntax tree is built. The
// cursor only ever moves forward, so evaluation terminates on every input.
const (
	orOperator  = '+'
	andOperator = '·'
	notOperator = '!'
)

type evaluator struct {
	input      []rune
	pos        int
	assignment Assignment
}

// Evaluate parses and evaluates the expression in a single left-to-right
// pass, looking up variables in the given assignment. Whitespace between
// tokens is ignored. Any character outside the expression language fails
// with a MalformedExpressionError naming the offending position; nothing is
// silently skipped.
func Evaluate(expression string, assignment Assignment) (bool, error) {
	if strings.TrimSpace(expression) == "" {
		return false, NewEmptyInputError()
	}

	e := &evaluator{
		input:      []rune(expression),
		assignment: assignment,
	}

	result, err := e.expression()
	if err != nil {
		return false, err
	}

	// A complete expression must consume all input. Anything left over, like
	// the stray ')' in "A·B)", is a syntax error, not something to ignore.
	e.skipWhitespace()
	if !e.atEnd() {
		return false, NewMalformedExpressionError(e.pos, e.current())
	}

	return result, nil
}

// expression := term ( '+' term )*
func (e *evaluator) expression() (bool, error) {
	value, err := e.term()
	if err != nil {
		return false, err
	}

	e.skipWhitespace()
	for !e.atEnd() && e.current() == orOperator {
		e.advance()
		rhs, err := e.term()
		if err != nil {
			return false, err
		}
		value = value || rhs
		e.skipWhitespace()
	}

	return value, nil
}

// term := factor ( '·' factor )*
func (e *evaluator) term() (bool, error) {
	value, err := e.factor()
	if err != nil {
		return false, err
	}

	e.skipWhitespace()
	for !e.atEnd() && e.current() == andOperator {
		e.advance()
		rhs, err := e.factor()
		if err != nil {
			return false, err
		}
		value = value && rhs
		e.skipWhitespace()
	}

	return value, nil
}

// factor := '!' factor | '(' expression ')' | '0' | '1' | variable
func (e *evaluator) factor() (bool, error) {
	e.skipWhitespace()
	if e.atEnd() {
		return false, NewMalformedExpressionError(e.pos, endOfInput)
	}

	switch c := e.current(); {
	case c == notOperator:
		e.advance()
		value, err := e.factor()
		if err != nil {
			return false, err
		}
		return !value, nil

	case c == '(':
		openPos := e.pos
		e.advance()
		value, err := e.expression()
		if err != nil {
			return false, err
		}
		e.skipWhitespace()
		if e.atEnd() || e.current() != ')' {
			return false, NewUnbalancedParenthesesError(openPos)
		}
		e.advance()
		return value, nil

	case c == '0' || c == '1':
		e.advance()
		return c == '1', nil

	case unicode.IsLetter(c):
		e.advance()
		return e.assignment.Value(c), nil

	default:
		pos := e.pos
		e.advance()
		return false, NewMalformedExpressionError(pos, c)
	}
}

func (e *evaluator) atEnd() bool {
	return e.pos >= len(e.input)
}

func (e *evaluator) current() rune {
	return e.input[e.pos]
}

func (e *evaluator) advance() {
	e.pos++
}

func (e *evaluator) skipWhitespace() {
	for !e.atEnd() && unicode.IsSpace(e.current()) {
		e.advance()
	}
}
