package catalog

import "errors"

var (
	// ErrCapacityExceeded is returned when an insert or replace would grow the
	// catalog past its configured capacity.
	ErrCapacityExceeded = errors.New("catalog is full")
	// ErrNotFound is returned when no movie carries the requested id.
	ErrNotFound = errors.New("movie not found")
	// ErrCorrupt is returned when persisted data cannot be decoded.
	ErrCorrupt = errors.New("catalog data is corrupt")
)
