package main

import (
	"os"
	"strings"

	"github.com/eallis/wiifolio/cmd"
	"github.com/eallis/wiifolio/internal/colors"
)

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run executes the CLI and returns the process exit code. Startup
// structured logs are skipped for the TUI since they would land on the
// alternate screen.
func run(args []string, execute func() error) int {
	tui := isTUIInvocation(args)
	if tui {
		colors.DisableStructuredLogging()
	} else {
		colors.StructuredInfo("startup", "main", "started", nil, map[string]interface{}{"args": len(args)})
	}

	if err := execute(); err != nil {
		if !tui {
			colors.StructuredError("startup", "main", "failed", err, nil)
		}
		colors.Error(err.Error())
		return 1
	}

	if !tui {
		colors.StructuredInfo("startup", "main", "completed", nil, nil)
	}
	return 0
}

// isTUIInvocation reports whether args run the bare root command.
func isTUIInvocation(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" || a == "-v" || a == "--version" {
			return false
		}
		if !strings.HasPrefix(a, "-") {
			return isFlagValue(args, a)
		}
	}
	return true
}

// isFlagValue reports whether a is the value of a preceding --page or --theme.
func isFlagValue(args []string, a string) bool {
	for i := 1; i < len(args); i++ {
		if args[i] == a && (args[i-1] == "--page" || args[i-1] == "--theme") {
			return true
		}
	}
	return false
}
