package htmlopt

import "errors"

// Sentinel errors for library operations.
var (
	ErrFileRead      = errors.New("failed to read HTML file")
	ErrFileWrite     = errors.New("failed to write HTML file")
	ErrDiscovery     = errors.New("failed to discover HTML files")
	ErrInvalidOption = errors.New("invalid option")
)
