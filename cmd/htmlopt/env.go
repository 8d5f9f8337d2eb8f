package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time and the filesystem pages are read from.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Fs     afero.Fs
}

// DefaultEnv returns the production environment on the OS filesystem.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Fs:     afero.NewOsFs(),
	}
}
