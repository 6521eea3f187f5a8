// Package cmd holds the root command shared by the wiifolio binary.
package cmd

import (
	"fmt"
	"strings"

	"github.com/eallis/wiifolio/internal/colors"
	"github.com/eallis/wiifolio/internal/config"
	"github.com/eallis/wiifolio/internal/logging"
	"github.com/eallis/wiifolio/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd is the base command. Subcommands register themselves on it from
// the main package; running it bare is wired there as well.
var RootCmd = &cobra.Command{
	Use:           "wiifolio",
	Short:         "A Wii-menu styled portfolio for the terminal.",
	Long:          `A Wii-menu styled portfolio for the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.ShutdownGlobal()
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// setup loads configuration and starts the file logger.
func setup() error {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))
	if err := logging.InitGlobal(); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	return nil
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.SetVersionTemplate(version.Banner() + "\n")
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			cmd.Println(cmd.Long)
			cmd.Println()
			cmd.Print(cmd.UsageString())
			return
		}
		cmd.Print(helpText(cmd))
	})
}

// commandOrder is the order subcommands appear in the root help.
var commandOrder = []string{
	"settings",
	"outbox",
	"content",
	"help",
	"version",
}

func helpText(cmd *cobra.Command) string {
	var lines []string
	for _, name := range commandOrder {
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				lines = append(lines, fmt.Sprintf("    %-16s %s", c.Name(), c.Short))
				break
			}
		}
	}

	return fmt.Sprintf(`%s

%s

USAGE:
    wiifolio [OPTIONS]
    wiifolio [COMMAND]

COMMANDS:
%s

OPTIONS:
    --page NAME     Start on a page (%s)
    --theme NAME    Override the theme for this run (light, dark)
    -h, --help      Show help message
`, version.Banner(), cmd.Short, strings.Join(lines, "\n"), strings.Join(pageNames, ", "))
}

// pageNames is filled in by the main package, which owns the page list.
var pageNames []string

// SetPageNames records the routes accepted by --page for the help text.
func SetPageNames(names []string) {
	pageNames = names
}
