package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag parsing.
var (
	ErrInvalidFlags     = errors.New("invalid flags")
	ErrUnexpectedArgs   = errors.New("unexpected arguments")
	ErrConflictingFlags = errors.New("conflicting flags")

	// errHelpShown signals that -h printed usage; not a failure.
	errHelpShown = errors.New("help shown")
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config string
	root   string
}

// outputFlags holds console output flags.
type outputFlags struct {
	quiet   bool
	verbose bool
	logFile string
}

// optimizeFlags holds all flags for the optimize command.
type optimizeFlags struct {
	common commonFlags
	output outputFlags
	dryRun bool
	minify bool
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.root, "root", "C", "", "site root directory")
}

// addOutputFlags adds console output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
	fs.StringVar(&f.logFile, "log-file", "", "also write logs to a rotating file")
}

// parseOptimizeFlags parses optimize command flags.
// The command takes no positional arguments.
func parseOptimizeFlags(args []string, stderr io.Writer) (*optimizeFlags, error) {
	fs := flag.NewFlagSet("optimize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &optimizeFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "show what would change without writing")
	fs.BoolVar(&f.minify, "minify", false, "minify injected CSS and JavaScript")

	fs.Usage = func() { printOptimizeUsage(stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	if f.output.quiet && f.output.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose", ErrConflictingFlags)
	}
	return f, nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string, stderr io.Writer) (*doctorFlags, error) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &doctorFlags{}

	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.json, "json", false, "print results as JSON")

	fs.Usage = func() { printDoctorUsage(stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseFlagSet parses args and rejects positional arguments.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelpShown
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}
	return nil
}
