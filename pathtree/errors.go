package pathtree

import "errors"

var (
	// ErrNotFound is returned when a path or value has no holder.
	ErrNotFound = errors.New("not found")
	// ErrNoData is returned when a path exists but holds no value.
	ErrNoData = errors.New("no data")
	// ErrResourceExhausted is returned when an operation would exceed a
	// configured limit.  The store is left as it was before the call.
	ErrResourceExhausted = errors.New("resources exhausted")
)
