package ledger

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS expenses (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id INTEGER NOT NULL UNIQUE,
	date TEXT NOT NULL,
	description TEXT NOT NULL,
	amount REAL NOT NULL
);
`

// SQLiteStore is the alternate backend for ledgers that outgrow a flat file.
// The seq column preserves insertion order across full rewrites.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the ledger database at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Init is satisfied by the schema creation in NewSQLite.
func (s *SQLiteStore) Init() error { return nil }

// Load reads all records in insertion order. Rows whose date no longer
// parses are dropped, matching the flat-file leniency.
func (s *SQLiteStore) Load() ([]Expense, error) {
	rows, err := s.db.Query(`
		SELECT id, date, description, amount
		FROM expenses
		ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Expense
	for rows.Next() {
		var e Expense
		var day string
		if err := rows.Scan(&e.ID, &day, &e.Description, &e.Amount); err != nil {
			return nil, err
		}
		d, err := ParseDate(day)
		if err != nil {
			continue
		}
		e.Date = d
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Save replaces the table contents with recs in one transaction.
func (s *SQLiteStore) Save(recs []Expense) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM expenses`); err != nil {
		tx.Rollback()
		return err
	}
	for _, e := range recs {
		_, err := tx.Exec(`
			INSERT INTO expenses (id, date, description, amount)
			VALUES (?, ?, ?, ?)`,
			e.ID, e.Date.Format(DateLayout), e.Description, e.Amount,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
