package repositories

import "errors"

// ErrNotFound is wrapped by every repository when an ID does not resolve to a record.
var ErrNotFound = errors.New("record not found")
