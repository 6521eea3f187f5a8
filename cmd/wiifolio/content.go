package main

import (
	"fmt"
	"os"

	"github.com/eallis/wiifolio/cmd"
	"github.com/eallis/wiifolio/internal/config"
	"github.com/eallis/wiifolio/internal/content"
	"github.com/eallis/wiifolio/internal/errors"
	"github.com/spf13/cobra"
)

const contentCommandLong = `Work with the portfolio content file.

The TUI shows built-in content unless content_path (WIIFOLIO_CONTENT_PATH)
points to a TOML catalog. Export the current catalog to start editing one.

USAGE:
    wiifolio content export [path]
    wiifolio content validate [path]`

// NewContentCmd creates the content command.
func NewContentCmd(h errors.Handler) *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Export or validate portfolio content",
		Long:  contentCommandLong,
	}

	exportCmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Write the active catalog as TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			catalog, err := content.Resolve(config.Get("content_path", ""))
			if err != nil {
				return fmt.Errorf("load content: %w", err)
			}
			if len(args) == 0 {
				return content.Export(c.OutOrStdout(), catalog)
			}
			return exportToFile(args[0], catalog, h)
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a content file for errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path := config.Get("content_path", "")
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no content file given and content_path is not set")
			}
			catalog, err := content.Load(path)
			if err != nil {
				return err
			}
			h.Success(fmt.Sprintf("%s is valid: %d projects, %d artworks, %d albums, %d news items",
				path, len(catalog.Projects), len(catalog.ArtWorks), len(catalog.Albums), len(catalog.News)))
			return nil
		},
	}

	contentCmd.AddCommand(exportCmd, validateCmd)
	return contentCmd
}

func exportToFile(path string, catalog *content.Catalog, h errors.Handler) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, config.FileModeFile)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := content.Export(f, catalog); err != nil {
		return err
	}
	h.Success("Content written to " + path)
	return nil
}

func init() {
	cmd.RootCmd.AddCommand(NewContentCmd(notices))
}
