package main

import (
	"errors"
	"io"
	"testing"

	"github.com/alnah/go-htmlopt/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseOptimizeFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseOptimizeFlags(t *testing.T) {
	t.Parallel()

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		f, err := parseOptimizeFlags([]string{
			"-c", "site", "-C", "/srv/site", "-v", "-n", "--minify", "--log-file", "run.log",
		}, io.Discard)
		if err != nil {
			t.Fatalf("parseOptimizeFlags() error: %v", err)
		}
		if f.common.config != "site" || f.common.root != "/srv/site" {
			t.Errorf("common = %+v", f.common)
		}
		if !f.output.verbose || f.output.quiet || f.output.logFile != "run.log" {
			t.Errorf("output = %+v", f.output)
		}
		if !f.dryRun || !f.minify {
			t.Errorf("dryRun = %v, minify = %v, want both true", f.dryRun, f.minify)
		}
	})

	errorTests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown flag", []string{"--nope"}, ErrInvalidFlags},
		{"missing value", []string{"--root"}, ErrInvalidFlags},
		{"positional", []string{"index.html"}, ErrUnexpectedArgs},
		{"quiet and verbose", []string{"-qv"}, ErrConflictingFlags},
		{"help", []string{"--help"}, errHelpShown},
	}

	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseOptimizeFlags(tt.args, io.Discard)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parseOptimizeFlags(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestParseDoctorFlags(t *testing.T) {
	t.Parallel()

	f, err := parseDoctorFlags([]string{"--json", "-C", "/srv/site"}, io.Discard)
	if err != nil {
		t.Fatalf("parseDoctorFlags() error: %v", err)
	}
	if !f.json || f.common.root != "/srv/site" {
		t.Errorf("flags = %+v", f)
	}

	if _, err := parseDoctorFlags([]string{"--dry-run"}, io.Discard); !errors.Is(err, ErrInvalidFlags) {
		t.Errorf("doctor should reject optimize flags, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - Flags over config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flags     optimizeFlags
		wantLevel string
		wantDry   bool
		wantFile  string
	}{
		{"no flags keeps config", optimizeFlags{}, "warn", false, "cfg.log"},
		{"verbose sets debug", optimizeFlags{output: outputFlags{verbose: true}}, "debug", false, "cfg.log"},
		{"quiet sets error", optimizeFlags{output: outputFlags{quiet: true}}, "error", false, "cfg.log"},
		{"dry run and log file", optimizeFlags{dryRun: true, output: outputFlags{logFile: "flag.log"}}, "warn", true, "flag.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Log.Level = "warn"
			cfg.Log.File = "cfg.log"

			mergeFlags(&tt.flags, cfg)

			if cfg.Log.Level != tt.wantLevel {
				t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, tt.wantLevel)
			}
			if cfg.Output.DryRun != tt.wantDry {
				t.Errorf("Output.DryRun = %v, want %v", cfg.Output.DryRun, tt.wantDry)
			}
			if cfg.Log.File != tt.wantFile {
				t.Errorf("Log.File = %q, want %q", cfg.Log.File, tt.wantFile)
			}
		})
	}
}
