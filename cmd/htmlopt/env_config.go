package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-htmlopt/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // HTMLOPT_CONFIG: config file name or path
	Root       string // HTMLOPT_ROOT: site root directory
	LogLevel   string // HTMLOPT_LOG_LEVEL: debug, info, warn, error
	LogFile    string // HTMLOPT_LOG_FILE: rotating log file
	DryRun     bool   // HTMLOPT_DRY_RUN: transform without writing
	Minify     bool   // HTMLOPT_MINIFY: minify injected fragments
}

// knownEnvVars lists valid HTMLOPT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"HTMLOPT_CONFIG":    true,
	"HTMLOPT_ROOT":      true,
	"HTMLOPT_LOG_LEVEL": true,
	"HTMLOPT_LOG_FILE":  true,
	"HTMLOPT_DRY_RUN":   true,
	"HTMLOPT_MINIFY":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Boolean values that do not parse are ignored.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("HTMLOPT_CONFIG"),
		Root:       os.Getenv("HTMLOPT_ROOT"),
		LogLevel:   os.Getenv("HTMLOPT_LOG_LEVEL"),
		LogFile:    os.Getenv("HTMLOPT_LOG_FILE"),
		DryRun:     envBool("HTMLOPT_DRY_RUN"),
		Minify:     envBool("HTMLOPT_MINIFY"),
	}
}

func envBool(name string) bool {
	b, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && b
}

// warnUnknownEnvVars logs warnings for unrecognized HTMLOPT_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "HTMLOPT_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Root != "" {
		cfg.Discovery.Root = env.Root
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFile != "" {
		cfg.Log.File = env.LogFile
	}
	if env.DryRun {
		cfg.Output.DryRun = true
	}
	if env.Minify {
		cfg.Output.Minify = true
	}
}
