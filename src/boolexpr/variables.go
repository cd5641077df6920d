package boolexpr

import (
	"unicode"

	"github.com/samber/lo"
)

// Variables returns the distinct variables referenced by the expression, in
// order of first appearance. Case matters, 'A' and 'a' are different
// variables. The order decides column order in truth tables, so it must be
// stable across calls.
func Variables(expression string) []rune {
	letters := lo.Filter([]rune(expression), func(c rune, _ int) bool {
		return unicode.IsLetter(c)
	})
	return lo.Uniq(letters)
}
