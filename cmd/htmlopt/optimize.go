package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	htmlopt "github.com/alnah/go-htmlopt"
	"github.com/alnah/go-htmlopt/internal/config"
	"github.com/alnah/go-htmlopt/internal/hints"
	"github.com/alnah/go-htmlopt/internal/logger"
)

// runOptimize runs the optimization pass and prints the summary.
// Per-page failures are logged and counted; only setup and discovery
// errors are returned.
func runOptimize(args []string, env *Environment) error {
	flags, err := parseOptimizeFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(flags.common, env)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		Output:     env.Stderr,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opt, err := newOptimizer(cfg, env, log)
	if err != nil {
		return err
	}

	if !flags.output.quiet {
		fmt.Fprintln(env.Stdout, "Starting HTML optimization...")
	}
	start := env.Now()

	report, err := opt.Run()
	if err != nil {
		return err
	}

	log.Debug("run finished",
		zap.Int("found", report.Found),
		zap.Int("processed", report.Processed),
		zap.Duration("elapsed", env.Now().Sub(start)),
	)

	if !flags.output.quiet {
		printSummary(env.Stdout, report, cfg)
	}
	return nil
}

// resolveConfig loads the config file named by flag or env, if any, and
// applies environment overrides.
func resolveConfig(flags commonFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		if cfg, err = config.LoadConfig(name); err != nil {
			return nil, err
		}
	}

	applyEnvConfig(envCfg, cfg)
	if flags.root != "" {
		cfg.Discovery.Root = flags.root
	}
	return cfg, nil
}

// mergeFlags applies optimize flags over the resolved config.
func mergeFlags(flags *optimizeFlags, cfg *config.Config) {
	if flags.dryRun {
		cfg.Output.DryRun = true
	}
	if flags.minify {
		cfg.Output.Minify = true
	}
	if flags.output.logFile != "" {
		cfg.Log.File = flags.output.logFile
	}
	switch {
	case flags.output.verbose:
		cfg.Log.Level = "debug"
	case flags.output.quiet:
		cfg.Log.Level = "error"
	}
}

// newOptimizer builds the library optimizer from the resolved config.
func newOptimizer(cfg *config.Config, env *Environment, log *zap.Logger) (*htmlopt.Optimizer, error) {
	return htmlopt.New(
		htmlopt.WithFs(env.Fs),
		htmlopt.WithRoot(cfg.Discovery.Root),
		htmlopt.WithFiles(cfg.Discovery.Files...),
		htmlopt.WithDir(cfg.Discovery.Dir),
		htmlopt.WithExtension(cfg.Discovery.Extension),
		htmlopt.WithImagePaths(cfg.Images.SourcePrefix, cfg.Images.OptimizedPrefix, cfg.Images.WebPDir),
		htmlopt.WithBackupSuffix(cfg.Backup.Suffix),
		htmlopt.WithMinify(cfg.Output.Minify),
		htmlopt.WithDryRun(cfg.Output.DryRun),
		htmlopt.WithLogger(log),
	)
}

// printFailures lists failed pages, with a hint when one applies.
func printFailures(w io.Writer, report *htmlopt.Report) {
	for _, r := range report.Results {
		if !r.OK() {
			fmt.Fprintf(w, "  FAILED %s%s\n", r.Path, hints.ForFileError(r.Err))
		}
	}
}

// printSummary writes the closing summary and follow-up checklist.
func printSummary(w io.Writer, report *htmlopt.Report, cfg *config.Config) {
	if report.Found == 0 {
		fmt.Fprintf(w, "\nNo HTML files found%s\n", hints.ForNoFiles(cfg.Discovery.Dir))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "HTML optimization complete")
	fmt.Fprintf(w, "Processed %d out of %d HTML files\n", report.Processed, report.Found)
	printFailures(w, report)
	if cfg.Output.DryRun {
		fmt.Fprintln(w, "Dry run: no files were written")
		return
	}
	fmt.Fprintf(w, "Backup files created with %s extension\n", cfg.Backup.Suffix)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "1. Images optimized and WebP versions created")
	fmt.Fprintln(w, "2. HTML files updated with lazy loading and WebP support")
	fmt.Fprintln(w, "3. Test the site to ensure everything works correctly")
	fmt.Fprintln(w, "4. Ready to deploy optimized version")
}
