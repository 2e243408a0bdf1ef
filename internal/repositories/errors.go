package repositories

import "errors"

// ErrNotFound marks a lookup whose record does not exist, as opposed to a
// query that failed. Callers distinguish the two with errors.Is; anything not
// wrapping ErrNotFound is an infrastructure failure and must propagate.
var ErrNotFound = errors.New("record not found")
