package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlopt [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  optimize   Rewrite image tags and inject lazy loading (default)")
	fmt.Fprintln(w, "  doctor     Check the site layout before optimizing")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'htmlopt help <command>' for details on a specific command.")
}

// printOptimizeUsage prints usage for the optimize command.
func printOptimizeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlopt [optimize] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite <img> tags into <picture> elements with WebP sources and lazy")
	fmt.Fprintln(w, "loading, inject the lazy loading styles and polyfill, and overwrite each")
	fmt.Fprintln(w, "page after copying it to <page>.backup.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pages:")
	fmt.Fprintln(w, "  index.html about.html 401.html 404.html home-copy.html lab02.html")
	fmt.Fprintln(w, "  styleguide.html, then every .html file directly inside work/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -C, --root <dir>          Site root directory (default: current)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -n, --dry-run             Show what would change without writing")
	fmt.Fprintln(w, "      --minify              Minify injected CSS and JavaScript")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w, "      --log-file <path>     Also write logs to a rotating file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTMLOPT_CONFIG, HTMLOPT_ROOT, HTMLOPT_LOG_LEVEL, HTMLOPT_LOG_FILE,")
	fmt.Fprintln(w, "  HTMLOPT_DRY_RUN, HTMLOPT_MINIFY")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlopt doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check which pages would be optimized, whether the optimized image")
	fmt.Fprintln(w, "directories exist, and whether the site root is writable.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -C, --root <dir>          Site root directory (default: current)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --json                Print results as JSON")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "optimize":
		printOptimizeUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: htmlopt version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: htmlopt help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
