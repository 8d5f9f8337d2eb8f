package main

import (
	"errors"

	htmlopt "github.com/alnah/go-htmlopt"
	"github.com/alnah/go-htmlopt/internal/config"
	"github.com/alnah/go-htmlopt/internal/logger"
)

// Exit codes for htmlopt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
// A run that completes exits 0 even when some pages failed.
const (
	ExitSuccess = 0 // Run completed
	ExitGeneral = 1 // Discovery or other fatal error
	ExitUsage   = 2 // Invalid flags, config, or validation
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, logger.ErrInvalidLevel) ||
		errors.Is(err, htmlopt.ErrInvalidOption) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrConflictingFlags) {
		return ExitUsage
	}

	return ExitGeneral
}
