package lemis

import "errors"

var (
	// ErrClosed is returned by lookups on a closed DB.
	ErrClosed = errors.New("database is closed")
)
