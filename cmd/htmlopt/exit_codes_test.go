package main

// Notes:
// - exitCodeFor: we test sentinel errors from the library, config, logger and
//   CLI, plus wrapped errors to verify errors.Is() chain works correctly.
// - Per-page errors (ErrFileRead, ErrFileWrite) never reach exitCodeFor from a
//   completed run; they map to ExitGeneral if returned directly.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"testing"

	htmlopt "github.com/alnah/go-htmlopt"
	"github.com/alnah/go-htmlopt/internal/config"
	"github.com/alnah/go-htmlopt/internal/logger"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config not found type", &config.NotFoundError{Searched: []string{"x.yaml"}}, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"invalid log level", logger.ErrInvalidLevel, ExitUsage},
		{"invalid option", htmlopt.ErrInvalidOption, ExitUsage},
		{"invalid flags", ErrInvalidFlags, ExitUsage},
		{"unexpected args", ErrUnexpectedArgs, ExitUsage},
		{"conflicting flags", ErrConflictingFlags, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"discovery", htmlopt.ErrDiscovery, ExitGeneral},
		{"wrapped discovery", fmt.Errorf("run: %w", htmlopt.ErrDiscovery), ExitGeneral},
		{"file read", htmlopt.ErrFileRead, ExitGeneral},
		{"file write", htmlopt.ErrFileWrite, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("exit codes = %d/%d/%d, want 0/1/2", ExitSuccess, ExitGeneral, ExitUsage)
	}
}
