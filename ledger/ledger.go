// Package ledger holds the expense records of one invocation and the stores
// that persist them. The whole ledger lives in memory for the lifetime of the
// process: load it, run one command against it, write it back.
package ledger

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound reports an update or delete against an id the ledger does not
// contain. Nothing is written when it is returned.
var ErrNotFound = errors.New("not found")

// Ledger is the ordered collection of expense records. Insertion order is
// preserved across load and save.
type Ledger struct {
	expenses []Expense
}

// New wraps the records loaded from a store.
func New(expenses []Expense) *Ledger {
	return &Ledger{expenses: expenses}
}

// NextID is one plus the highest id currently present, or 1 for an empty
// ledger. Gaps left by deletions are never refilled.
func (l *Ledger) NextID() uint32 {
	var max uint32
	for _, e := range l.expenses {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// Add appends a new record under the next free id and returns it.
func (l *Ledger) Add(description string, amount float64, date *time.Time) Expense {
	e := NewExpense(l.NextID(), description, amount, date)
	l.expenses = append(l.expenses, e)
	return e
}

// Update applies a partial edit to the record with the given id.
func (l *Ledger) Update(id uint32, u Update) error {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			l.expenses[i].Apply(u)
			return nil
		}
	}
	return fmt.Errorf("expense %d: %w", id, ErrNotFound)
}

// Delete removes the record with the given id, keeping the order of the
// survivors.
func (l *Ledger) Delete(id uint32) error {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("expense %d: %w", id, ErrNotFound)
}

// Expenses returns the ordered records for filtering and display.
func (l *Ledger) Expenses() []Expense {
	return l.expenses
}

// Len reports the number of records.
func (l *Ledger) Len() int {
	return len(l.expenses)
}
