package ledger

// Store persists the full ordered ledger at one location. Save rewrites the
// location wholesale; there is no locking around it, so two processes writing
// the same location race and the last writer wins.
type Store interface {
	Init() error
	Load() ([]Expense, error)
	Save([]Expense) error
	Close() error
}
