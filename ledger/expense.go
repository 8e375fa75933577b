package ledger

import "time"

// DateLayout is the calendar-day format used everywhere the ledger touches
// dates: the persisted file, the SQLite backend and the CLI flags.
const DateLayout = "2006-01-02"

// Expense is one row of the ledger.
type Expense struct {
	ID          uint32
	Date        time.Time
	Description string
	Amount      float64
}

// NewExpense builds a record. A nil date means today in local time. Amount
// and description are stored as given; the ledger does not judge what you
// spend money on.
func NewExpense(id uint32, description string, amount float64, date *time.Time) Expense {
	d := today()
	if date != nil {
		d = Day(*date)
	}
	return Expense{ID: id, Date: d, Description: description, Amount: amount}
}

// Update carries the fields of a partial edit. A nil field leaves the
// corresponding record field untouched, which keeps "not supplied" distinct
// from "set to the zero value".
type Update struct {
	Description *string
	Amount      *float64
	Date        *time.Time
}

// Apply overwrites each field for which the update carries a value.
func (e *Expense) Apply(u Update) {
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Amount != nil {
		e.Amount = *u.Amount
	}
	if u.Date != nil {
		e.Date = Day(*u.Date)
	}
}

// Day truncates t to calendar-day precision in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func today() time.Time { return Day(time.Now()) }

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
