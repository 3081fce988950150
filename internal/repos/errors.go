package repos

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound reports that a delete matched no row. A repeated delete of an
// already-deleted id surfaces this, never a generic failure.
var ErrNotFound = errors.New("record not found")

// StoreError wraps every other store-level failure and carries the
// store-native code for server-side diagnostics. The code never reaches an
// API response.
type StoreError struct {
	Code string
	Err  error
}

func (e *StoreError) Error() string {
	if e == nil || e.Err == nil {
		return "store error"
	}
	if e.Code != "" {
		return "store error (" + e.Code + "): " + e.Err.Error()
	}
	return "store error: " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

func wrapStoreError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &StoreError{Code: pgErr.Code, Err: err}
	}
	return &StoreError{Err: err}
}
