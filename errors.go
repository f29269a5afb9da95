package blobvec

import "errors"

var (
	// ErrNotInitialized is returned when an operation is called on a nil or
	// released vector, or with a nil comparator.
	ErrNotInitialized = errors.New("blobvec: vector not initialized")

	// ErrAlloc is returned when an element blob cannot be materialized from
	// the given payload.
	ErrAlloc = errors.New("blobvec: cannot allocate element")

	// ErrRange is returned by Reserve when the requested capacity would not
	// grow the vector. Index-taking operations never return it, they clamp
	// out-of-range values instead.
	ErrRange = errors.New("blobvec: reservation must exceed current capacity")
)
