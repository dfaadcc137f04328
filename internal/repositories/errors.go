package repositories

import "errors"

// ErrNotFound is returned when a lookup by identifier matches no row.
// Callers test for it with errors.Is; every other repository error is a
// data-access failure with the underlying message wrapped.
var ErrNotFound = errors.New("record not found")
