package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/eallis/wiifolio/cmd"
	"github.com/eallis/wiifolio/internal/config"
	"github.com/eallis/wiifolio/internal/contact"
	"github.com/eallis/wiifolio/internal/content"
	"github.com/eallis/wiifolio/internal/logging"
	"github.com/eallis/wiifolio/internal/settings"
	"github.com/eallis/wiifolio/internal/sound"
	"github.com/eallis/wiifolio/internal/tui/state"
	"github.com/spf13/cobra"
)

type tuiOptions struct {
	page  string
	theme string
}

// runProgram runs the model until the user quits. Tests replace it.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// attachTUI makes the bare root command start the TUI.
func attachTUI(root *cobra.Command, prefs settingsClient, open outboxOpener) {
	var opts tuiOptions
	root.Args = cobra.NoArgs
	root.RunE = func(c *cobra.Command, args []string) error {
		return runTUI(opts, prefs, open)
	}
	root.Flags().StringVar(&opts.page, "page", "", "Start on a page ("+strings.Join(state.PageNames(), ", ")+")")
	root.Flags().StringVar(&opts.theme, "theme", "", "Override the theme for this run (light, dark)")
	cmd.SetPageNames(state.PageNames())
}

func runTUI(opts tuiOptions, prefsStore settingsClient, open outboxOpener) error {
	page, err := state.ParsePage(opts.page)
	if err != nil {
		return err
	}

	prefs, err := prefsStore.Load()
	if err != nil {
		logging.Warn("preferences unreadable, using defaults", "path", prefsStore.Path(), "error", err)
	}
	if opts.theme != "" {
		if prefs, err = prefs.Set(settings.KeyTheme, opts.theme); err != nil {
			return err
		}
	}

	catalog, err := content.Resolve(config.Get("content_path", ""))
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	store, err := open()
	if err != nil {
		return fmt.Errorf("open outbox: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error("failed to close outbox", "error", err)
		}
	}()

	model := state.NewModel(state.Options{
		Catalog:            catalog,
		Preferences:        prefs,
		SavePreferences:    prefsStore.Save,
		Submitter:          contact.NewSubmitter(store, contact.WithDelay(config.GetDuration("submit_delay_ms", contact.DefaultDelay))),
		Player:             sound.NewPlayer(os.Stderr, prefs.SoundEnabled),
		StartPage:          page,
		ClockFormat:        config.Get("clock_format", "12h"),
		ContactStatusReset: config.GetDuration("status_reset_ms", 3*time.Second),
	})
	defer model.Shutdown()

	logging.Info("starting tui", "page", page.String(), "theme", string(prefs.Theme))
	if err := runProgram(model); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	logging.Info("tui exited", "page", model.Page().String())
	return nil
}

func init() {
	attachTUI(cmd.RootCmd, prefsClient, openOutbox)
}
