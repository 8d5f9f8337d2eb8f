// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"errors"
	"io/fs"
	"strings"
)

// ForFileError returns a hint for a failed read or write of a page.
func ForFileError(err error) string {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return format("check write permissions on the page and its directory")
	case errors.Is(err, fs.ErrNotExist):
		return format("run from the site root or pass --root")
	default:
		return ""
	}
}

// ForNoFiles returns a hint when discovery found no candidate pages.
func ForNoFiles(dir string) string {
	hint := "run from the site root, pass --root, or list pages under discovery.files"
	if dir != "" {
		hint += "; subdirectory " + dir + "/ is also scanned"
	}
	return format(hint)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/htmlopt/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/htmlopt") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingVariants returns a hint when the optimized image directories
// the rewritten tags point to do not exist yet.
func ForMissingVariants(webpDir string) string {
	return format("generate optimized and WebP variants (e.g. into " + webpDir + ") before deploying")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
