package boolexpr_test

import (
	"testing"

	"github.com/eriklarko/boolean-solver/src/boolexpr"
	"github.com/stretchr/testify/assert"
)

func TestVariableDiscovery(t *testing.T) {
	tests := map[string][]rune{
		"A·B":        {'A', 'B'},
		"B+A":        {'B', 'A'}, // order of first appearance, not alphabetical
		"A·B+A·!B":   {'A', 'B'}, // no duplicates
		"a·A":        {'a', 'A'}, // case matters
		"x+y·z+x":    {'x', 'y', 'z'},
		"!(p)·(q+p)": {'p', 'q'},
	}

	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			assert.Equal(t, expected, boolexpr.Variables(expression))
		})
	}
}

func TestVariableDiscoveryWithoutVariables(t *testing.T) {
	for _, expression := range []string{"", "1·(0+1)", "!0+1"} {
		t.Run(expression, func(t *testing.T) {
			assert.Empty(t, boolexpr.Variables(expression))
		})
	}
}
