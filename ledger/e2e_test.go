package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks one ledger through the full add/update/delete/list/summary life,
// reloading from disk between commands the way separate invocations would.
func TestLedgerLifecycle(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "expenses.csv")
	store := NewCSV(path, false)
	require.NoError(t, store.Init())

	year := time.Now().Year()
	reload := func() *Ledger {
		recs, err := store.Load()
		require.NoError(t, err)
		return New(recs)
	}

	// add coffee
	led := reload()
	d := date(year, time.January, 5)
	e := led.Add("coffee", 3.50, &d)
	assert.Equal(t, uint32(1), e.ID)
	require.NoError(t, store.Save(led.Expenses()))

	// add book
	led = reload()
	d = date(year, time.February, 1)
	e = led.Add("book", 12.00, &d)
	assert.Equal(t, uint32(2), e.ID)
	require.NoError(t, store.Save(led.Expenses()))

	// update coffee's amount, nothing else
	led = reload()
	amount := 4.00
	require.NoError(t, led.Update(1, Update{Amount: &amount}))
	require.NoError(t, store.Save(led.Expenses()))

	led = reload()
	require.Equal(t, 2, led.Len())
	assert.Equal(t, "coffee", led.Expenses()[0].Description)
	assert.Equal(t, 4.00, led.Expenses()[0].Amount)
	assert.True(t, led.Expenses()[0].Date.Equal(date(year, time.January, 5)))

	// delete the book
	led = reload()
	require.NoError(t, led.Delete(2))
	require.NoError(t, store.Save(led.Expenses()))

	// list january
	led = reload()
	recs, err := FilterByMonth(led.Expenses(), time.January)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, uint32(1), recs[0].ID)

	// summarize january
	assert.InDelta(t, 4.00, Total(recs), 1e-9)

	// ids follow max+1, so with only id 1 left the next add gets 2
	led = reload()
	e = led.Add("pastry", 2.20, nil)
	assert.Equal(t, uint32(2), e.ID)
}

func TestDeleteNotFoundLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "expenses.csv")
	store := NewCSV(path, false)
	require.NoError(t, store.Save(sample()))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	recs, err := store.Load()
	require.NoError(t, err)
	led := New(recs)

	// The failed delete never reaches Save, so the file cannot change.
	require.ErrorIs(t, led.Delete(42), ErrNotFound)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInvalidMonthHasNoSideEffect(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "expenses.csv")
	store := NewCSV(path, false)
	require.NoError(t, store.Save(sample()))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	recs, err := store.Load()
	require.NoError(t, err)

	_, err = FilterByMonth(recs, time.Month(13))
	require.ErrorIs(t, err, ErrInvalidMonth)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
