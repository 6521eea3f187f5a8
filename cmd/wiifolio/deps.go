package main

import (
	"context"
	"time"

	"github.com/eallis/wiifolio/internal/config"
	"github.com/eallis/wiifolio/internal/contact"
	"github.com/eallis/wiifolio/internal/errors"
	"github.com/eallis/wiifolio/internal/settings"
	"github.com/eallis/wiifolio/internal/storage/sqlite"
)

// settingsClient is the preferences store used by the TUI and the settings command.
type settingsClient interface {
	Load() (settings.Preferences, error)
	Save(settings.Preferences) error
	Reset() error
	Path() string
}

type fileSettings struct{}

func (fileSettings) Load() (settings.Preferences, error) { return settings.Load() }
func (fileSettings) Save(p settings.Preferences) error   { return settings.Save(p) }
func (fileSettings) Reset() error                        { return settings.Reset() }
func (fileSettings) Path() string                        { return settings.Path() }

// outboxStore is the contact outbox plus the maintenance operations the CLI needs.
type outboxStore interface {
	contact.Outbox
	Prune(ctx context.Context, cutoff time.Time, dryRun bool) (int, error)
	Close() error
}

// outboxOpener opens the outbox after configuration has been loaded.
type outboxOpener func() (outboxStore, error)

func openOutbox() (outboxStore, error) {
	o, err := sqlite.Open(config.Get("outbox_path", ""))
	if err != nil {
		return nil, err
	}
	return o, nil
}

var (
	prefsClient settingsClient = fileSettings{}
	notices     errors.Handler = errors.NewDefaultCLIHandler()
)
