package truthtable

import (
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

// Summary describes how often an expression is true across its truth table.
type Summary struct {
	Rows      int
	TrueCount int

	// TrueRatio is TrueCount / Rows, between 0 (contradiction) and 1
	// (tautology).
	TrueRatio float64
}

// Summarize counts the satisfying rows of the table.
func (t *Table) Summarize() Summary {
	results := lo.Map(t.Rows, func(row Row, _ int) float64 {
		if row.Result {
			return 1
		}
		return 0
	})

	ratio, err := stats.Mean(results)
	if err != nil {
		// stats.Mean only fails on empty input and a table always has at
		// least one row
		ratio = 0
	}

	return Summary{
		Rows: len(t.Rows),
		TrueCount: lo.CountBy(t.Rows, func(row Row) bool {
			return row.Result
		}),
		TrueRatio: ratio,
	}
}
