package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"

	"github.com/alnah/go-htmlopt/internal/config"
	"github.com/alnah/go-htmlopt/internal/fileutil"
	"github.com/alnah/go-htmlopt/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string    `json:"status"` // "ready", "warnings", "errors"
	Root     rootInfo  `json:"root"`
	Pages    []string  `json:"pages"`
	Dirs     []dirInfo `json:"directories"`
	Env      envInfo   `json:"environment"`
	Warnings []string  `json:"warnings,omitempty"`
	Errors   []string  `json:"errors,omitempty"`
}

// rootInfo holds site root checks.
type rootInfo struct {
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
}

// dirInfo holds an expected directory and whether it exists.
type dirInfo struct {
	Role   string `json:"role"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
	CI   bool   `json:"ci"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = usage.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		return reportError(err, env)
	}

	cfg, err := resolveConfig(flags.common, env)
	if err != nil {
		return reportError(err, env)
	}

	result := runDoctor(cfg, env)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(cfg *config.Config, env *Environment) *doctorResult {
	root := cfg.Discovery.Root
	if root == "" {
		root = "."
	}

	result := &doctorResult{
		Status: "ready",
		Root:   rootInfo{Path: root},
		Pages:  []string{},
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
			CI:   isCI(),
		},
	}

	checkRoot(result, env.Fs)
	if result.Root.Exists {
		checkPages(result, cfg, env)
		checkDirs(result, cfg, env.Fs)
	}

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkRoot verifies the site root exists and accepts new files.
func checkRoot(result *doctorResult, fs afero.Fs) {
	if !fileutil.DirExists(fs, result.Root.Path) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Site root not found: %s", result.Root.Path))
		return
	}
	result.Root.Exists = true

	probe, err := afero.TempFile(fs, result.Root.Path, ".htmlopt-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Site root not writable: %s%s", result.Root.Path, hints.ForFileError(err)))
		return
	}
	name := probe.Name()
	_ = probe.Close()
	_ = fs.Remove(name)
	result.Root.Writable = true
}

// checkPages lists the pages a run would process.
func checkPages(result *doctorResult, cfg *config.Config, env *Environment) {
	opt, err := newOptimizer(cfg, env, nil)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}

	pages, err := opt.Discover()
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}
	if len(pages) == 0 {
		result.Warnings = append(result.Warnings,
			"No HTML files found"+hints.ForNoFiles(cfg.Discovery.Dir))
		return
	}
	result.Pages = pages
}

// checkDirs reports whether the page and image directories exist.
func checkDirs(result *doctorResult, cfg *config.Config, fs afero.Fs) {
	expected := []struct{ role, path string }{
		{"pages", cfg.Discovery.Dir},
		{"optimized images", cfg.Images.OptimizedPrefix},
		{"webp images", cfg.Images.WebPDir},
	}

	missingVariants := false
	for _, d := range expected {
		if d.path == "" {
			continue
		}
		full := filepath.Join(result.Root.Path, filepath.FromSlash(d.path))
		info := dirInfo{Role: d.role, Path: d.path, Exists: fileutil.DirExists(fs, full)}
		result.Dirs = append(result.Dirs, info)
		if !info.Exists && d.role != "pages" {
			missingVariants = true
		}
	}

	if missingVariants {
		result.Warnings = append(result.Warnings,
			"Optimized image directories missing"+hints.ForMissingVariants(cfg.Images.WebPDir))
	}
}

// isCI detects common CI environments.
func isCI() bool {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "htmlopt doctor")
	fmt.Fprintln(w)

	// Root section
	fmt.Fprintln(w, "Site root")
	switch {
	case !r.Root.Exists:
		fmt.Fprintf(w, "  [ERROR] %s: not found\n", r.Root.Path)
	case r.Root.Writable:
		fmt.Fprintf(w, "  [OK] %s: writable\n", r.Root.Path)
	default:
		fmt.Fprintf(w, "  [ERROR] %s: not writable\n", r.Root.Path)
	}
	fmt.Fprintln(w)

	// Pages section
	fmt.Fprintln(w, "Pages")
	if len(r.Pages) == 0 {
		fmt.Fprintln(w, "  [WARN] none found")
	}
	for _, p := range r.Pages {
		fmt.Fprintf(w, "  [OK] %s\n", p)
	}
	fmt.Fprintln(w)

	// Directories section
	if len(r.Dirs) > 0 {
		fmt.Fprintln(w, "Directories")
		for _, d := range r.Dirs {
			if d.Exists {
				fmt.Fprintf(w, "  [OK] %s: %s\n", d.Role, d.Path)
			} else {
				fmt.Fprintf(w, "  [WARN] %s: %s missing\n", d.Role, d.Path)
			}
		}
		fmt.Fprintln(w)
	}

	// Environment section
	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to optimize")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
