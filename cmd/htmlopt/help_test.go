package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{"no args", nil, "Commands:", ""},
		{"optimize", []string{"optimize"}, "--minify", ""},
		{"doctor", []string{"doctor"}, "--json", ""},
		{"version", []string{"version"}, "Show version information.", ""},
		{"help", []string{"help"}, "Usage: htmlopt help", ""},
		{"unknown", []string{"nope"}, "", "Unknown command: nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			runHelp(tt.args, &Environment{Stdout: &stdout, Stderr: &stderr})

			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout should contain %q, got %q", tt.wantStdout, stdout.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr should contain %q, got %q", tt.wantStderr, stderr.String())
			}
		})
	}
}
