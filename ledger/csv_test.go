package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSameExpenses(t *testing.T, want, got []Expense) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].Amount, got[i].Amount)
		assert.True(t, got[i].Date.Equal(want[i].Date),
			"date mismatch: want %s got %s", want[i].Date, got[i].Date)
	}
}

func TestCSVInitWritesHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "expenses.csv")
	s := NewCSV(path, false)
	require.NoError(t, s.Init())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id;date;description;amount\n", string(data))
}

func TestCSVInitIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "expenses.csv")
	s := NewCSV(path, false)
	require.NoError(t, s.Init())
	require.NoError(t, s.Save(sample()))

	// A second Init must not touch the existing ledger.
	require.NoError(t, s.Init())
	got, err := s.Load()
	require.NoError(t, err)
	assertSameExpenses(t, sample(), got)
}

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "expenses.csv")
	s := NewCSV(path, false)

	want := []Expense{
		{ID: 1, Date: date(2024, time.January, 5), Description: "coffee", Amount: 3.50},
		{ID: 2, Date: date(2024, time.February, 1), Description: "book; hardcover", Amount: 12.00},
		{ID: 5, Date: date(2023, time.December, 31), Description: "party", Amount: -42.137},
	}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assertSameExpenses(t, want, got)
}

func TestCSVSaveOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "expenses.csv")
	s := NewCSV(path, false)

	require.NoError(t, s.Save(sample()))
	reduced := sample()[:1]
	require.NoError(t, s.Save(reduced))

	got, err := s.Load()
	require.NoError(t, err)
	assertSameExpenses(t, reduced, got)
}

func TestCSVLoadDropsMalformedRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "expenses.csv")
	content := strings.Join([]string{
		"id;date;description;amount",
		"1;2024-01-05;coffee;3.5",
		"2;2024-02-01;book", // wrong arity
		"x;2024-02-02;pen;1.2",
		"3;not-a-date;tea;2.0",
		"4;2024-02-03;milk;oops",
		"5;2024-02-04;bread;2.75",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	got, err := NewCSV(path, false).Load()
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, uint32(1), got[0].ID)
	assert.Equal(t, uint32(5), got[1].ID)
}

func TestCSVLoadStrict(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "expenses.csv")
	content := strings.Join([]string{
		"id;date;description;amount",
		"1;2024-01-05;coffee;3.5",
		"2;2024-02-01;book",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewCSV(path, true).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestCSVLoadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.csv")
	_, err := NewCSV(path, false).Load()
	require.Error(t, err)
}

func TestCSVSaveLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "expenses.csv")
	require.NoError(t, NewCSV(path, false).Save(sample()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "expenses.csv", entries[0].Name())
}
