package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Delimiter separates the fields of the persisted file. Semicolons, not
// commas: amounts written with a locale decimal comma must not split a row.
const Delimiter = ';'

var csvHeader = []string{"id", "date", "description", "amount"}

// CSVStore keeps the ledger in a delimited text file with a fixed header
// line. Loading is lenient by default: rows that fail to parse are dropped so
// one damaged line cannot take the whole ledger down. With strict set, a bad
// row aborts the load instead.
type CSVStore struct {
	path   string
	strict bool
}

// NewCSV returns a store over the file at path.
func NewCSV(path string, strict bool) *CSVStore {
	return &CSVStore{path: path, strict: strict}
}

// Init creates the file with the canonical header when it does not exist.
// Calling it on an existing ledger is a no-op.
func (s *CSVStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	w.Comma = Delimiter
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load parses the file into the ordered record sequence. The header line is
// skipped without being re-validated.
func (s *CSVStore) Load() ([]Expense, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = Delimiter
	r.FieldsPerRecord = -1

	var out []Expense
	for line := 1; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if s.strict {
				return nil, err
			}
			continue
		}
		if line == 1 {
			continue
		}
		e, err := parseRow(row)
		if err != nil {
			if s.strict {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Save rewrites the file with the given records, via a temp file and rename
// so a crash mid-write cannot leave a half-written ledger behind.
func (s *CSVStore) Save(recs []Expense) error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Comma = Delimiter
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	for _, e := range recs {
		err := w.Write([]string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Date.Format(DateLayout),
			e.Description,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
		})
		if err != nil {
			f.Close()
			os.Remove(tmp)
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, s.path)
}

// Close is a no-op; the file is only held open inside Load and Save.
func (s *CSVStore) Close() error { return nil }

func parseRow(row []string) (Expense, error) {
	if len(row) != 4 {
		return Expense{}, fmt.Errorf("want 4 fields, got %d", len(row))
	}
	id, err := strconv.ParseUint(row[0], 10, 32)
	if err != nil {
		return Expense{}, fmt.Errorf("id %q: %w", row[0], err)
	}
	date, err := ParseDate(row[1])
	if err != nil {
		return Expense{}, fmt.Errorf("date %q: %w", row[1], err)
	}
	amount, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return Expense{}, fmt.Errorf("amount %q: %w", row[3], err)
	}
	return Expense{
		ID:          uint32(id),
		Date:        date,
		Description: row[2],
		Amount:      amount,
	}, nil
}
