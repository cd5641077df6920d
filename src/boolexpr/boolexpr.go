// Package boolexpr evaluates boolean expressions written in the solver's
// notation: '+' for OR, '·' for AND, '!' for NOT, parentheses for grouping,
// the literals '0' and '1', and single-letter variables.
//
// Example usage:
//
//	result, err := boolexpr.Evaluate("A·(B+!C)", boolexpr.Assignment{'C': false})
//	if err != nil {
//		log.Fatalf("failed to evaluate expression: %v", err)
//	}
//	fmt.Println(result) // Output: true
package boolexpr

// Assignment maps single-letter variables to boolean values for the duration
// of one evaluation. Any variable not present in the assignment is true, so
// the zero value (nil) assigns true to everything.
type Assignment map[rune]bool

// Value looks up a variable. Missing variables are true, never an error.
func (a Assignment) Value(name rune) bool {
	if value, ok := a[name]; ok {
		return value
	}
	return true
}
