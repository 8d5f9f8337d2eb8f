package assets

import (
	"embed"
	"fmt"
	"regexp"
)

//go:embed fragments/*
var fragments embed.FS

// fragmentName is the shape of a fragment file stem: no separators, no dots.
var fragmentName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// EmbeddedLoader loads fragments from the embedded filesystem.
// Implements FragmentLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS fragment from embedded assets by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(name, ".css")
}

// LoadScript loads a JavaScript fragment from embedded assets by name.
func (e *EmbeddedLoader) LoadScript(name string) (string, error) {
	return e.load(name, ".js")
}

func (e *EmbeddedLoader) load(name, ext string) (string, error) {
	if !fragmentName.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFragmentName, name)
	}

	content, err := fragments.ReadFile("fragments/" + name + ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrFragmentNotFound, name+ext)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ FragmentLoader = (*EmbeddedLoader)(nil)
