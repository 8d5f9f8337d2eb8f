package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-htmlopt/internal/config"
	"github.com/alnah/go-htmlopt/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommands; running without one optimizes.
var commands = map[string]bool{
	"optimize": true,
	"doctor":   true,
	"version":  true,
	"help":     true,
}

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return commands[arg]
}

// runMain dispatches to a subcommand and returns the process exit code.
// args[0] is the program name.
func runMain(args []string, env *Environment) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	cmd := "optimize"
	if len(rest) > 0 && !isFlag(rest[0]) {
		cmd = rest[0]
		rest = rest[1:]
	}

	switch cmd {
	case "optimize":
		return reportError(runOptimize(rest, env), env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "htmlopt %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// reportError prints err with any matching hint and maps it to an exit code.
func reportError(err error, env *Environment) int {
	if err == nil || errors.Is(err, errHelpShown) {
		return ExitSuccess
	}

	msg := "error: " + err.Error()
	var notFound *config.NotFoundError
	if errors.As(err, &notFound) {
		msg += hints.ForConfigNotFound(notFound.Searched)
	}
	msg += hints.ForFileError(err)
	fmt.Fprintln(env.Stderr, msg)

	return exitCodeFor(err)
}

func isFlag(arg string) bool {
	return len(arg) > 0 && arg[0] == '-'
}
