package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/eallis/wiifolio/cmd"
	"github.com/eallis/wiifolio/internal/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

const (
	settingsCommandLong = `Manage preferences saved by the TUI.

USAGE:
    wiifolio settings <subcommand>

SUBCOMMANDS:
    show     Display current preferences
    set      Change one preference
    reset    Reset preferences to defaults

KEYS:
    theme    light or dark
    sound    true or false`
	setCommandLong = `Change one preference.

EXAMPLES:
    wiifolio settings set theme dark
    wiifolio settings set sound false`
	resetCommandLong = `Reset preferences to defaults by deleting the preferences file.

OPTIONS:
    --force    Reset without confirmation`
)

// NewSettingsCmd creates the settings command with explicit dependencies.
func NewSettingsCmd(client settingsClient, h errors.Handler) *cobra.Command {
	if client == nil {
		panic("NewSettingsCmd: client dependency cannot be nil")
	}

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Long:  settingsCommandLong,
	}
	settingsCmd.AddCommand(newShowCmd(client), newSetCmd(client, h), newResetCmd(client, h))
	return settingsCmd
}

func newShowCmd(client settingsClient) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current preferences",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runShowCmd(client, c.OutOrStdout())
		},
	}
}

func newSetCmd(client settingsClient, h errors.Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one preference",
		Long:  setCommandLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runSetCmd(client, h, args[0], args[1])
		},
	}
}

func newResetCmd(client settingsClient, h errors.Handler) *cobra.Command {
	var force bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset preferences to defaults",
		Long:  resetCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if !force && !confirmReset(c.InOrStdin(), c.OutOrStdout()) {
				h.Info("Operation cancelled")
				return nil
			}
			return runResetCmd(client, h)
		},
	}
	resetCmd.Flags().BoolVar(&force, "force", false, "Reset without confirmation")
	return resetCmd
}

func runShowCmd(client settingsClient, w io.Writer) error {
	prefs, err := client.Load()
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	data, err := toml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	_, err = fmt.Fprintf(w, "# %s\n%s", client.Path(), data)
	return err
}

func runSetCmd(client settingsClient, h errors.Handler, key, value string) error {
	prefs, err := client.Load()
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	prefs, err = prefs.Set(key, value)
	if err != nil {
		return err
	}
	if err := client.Save(prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	h.Success(fmt.Sprintf("%s set to %s", strings.ToLower(key), value))
	return nil
}

func runResetCmd(client settingsClient, h errors.Handler) error {
	if err := client.Reset(); err != nil {
		return fmt.Errorf("failed to reset preferences: %w", err)
	}
	h.Success("Preferences reset to defaults")
	return nil
}

// confirmReset asks for confirmation on w and reads the answer from r.
func confirmReset(r io.Reader, w io.Writer) bool {
	_, _ = fmt.Fprint(w, "Reset all preferences to defaults? (y/N): ")
	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	cmd.RootCmd.AddCommand(NewSettingsCmd(prefsClient, notices))
}
