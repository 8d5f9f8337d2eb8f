package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrFragmentNotFound indicates the requested fragment does not exist.
	ErrFragmentNotFound = errors.New("fragment not found")

	// ErrInvalidFragmentName indicates a name that is not a bare file stem.
	ErrInvalidFragmentName = errors.New("invalid fragment name")
)
