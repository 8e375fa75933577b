package ledger

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidMonth reports a month outside 1..12.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// FilterByMonth keeps the records dated in the given month of the current
// local calendar year. Records from other years never match, even when the
// month does; the filter is deliberately pinned to the year the command runs
// in. Callers with no month to filter by skip the call entirely.
func FilterByMonth(recs []Expense, month time.Month) ([]Expense, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month %d: %w", int(month), ErrInvalidMonth)
	}
	year := time.Now().Year()
	var out []Expense
	for _, e := range recs {
		if e.Date.Month() == month && e.Date.Year() == year {
			out = append(out, e)
		}
	}
	return out, nil
}

// Total sums the amounts of recs. An empty slice totals 0.
func Total(recs []Expense) float64 {
	var sum float64
	for _, e := range recs {
		sum += e.Amount
	}
	return sum
}
