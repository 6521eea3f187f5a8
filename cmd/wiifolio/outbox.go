package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/eallis/wiifolio/cmd"
	"github.com/eallis/wiifolio/internal/contact"
	"github.com/eallis/wiifolio/internal/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	outboxCommandLong = `List contact messages recorded by the TUI.

Messages sent from the contact page are kept in a local SQLite outbox.

USAGE:
    wiifolio outbox [--limit N]
    wiifolio outbox show <id>
    wiifolio outbox prune --older-than-days N [--dry-run]`
	defaultOutboxLimit = 20
	previewLength      = 40
)

// NewOutboxCmd creates the outbox command with explicit dependencies.
func NewOutboxCmd(open outboxOpener, h errors.Handler, now func() time.Time) *cobra.Command {
	if open == nil {
		panic("NewOutboxCmd: open dependency cannot be nil")
	}
	if now == nil {
		now = time.Now
	}

	var limit int
	outboxCmd := &cobra.Command{
		Use:   "outbox",
		Short: "List recorded contact messages",
		Long:  outboxCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("limit must be a positive integer")
			}
			return withOutbox(open, func(store outboxStore) error {
				return runOutboxList(c.Context(), store, c.OutOrStdout(), limit, now())
			})
		},
	}
	outboxCmd.Flags().IntVar(&limit, "limit", defaultOutboxLimit, "Maximum number of messages to list")
	outboxCmd.AddCommand(newOutboxShowCmd(open), newOutboxPruneCmd(open, h, now))
	return outboxCmd
}

func newOutboxShowCmd(open outboxOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one recorded message",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			return withOutbox(open, func(store outboxStore) error {
				s, err := store.Get(c.Context(), id)
				if err != nil {
					return err
				}
				return printSubmission(c.OutOrStdout(), s)
			})
		},
	}
}

func newOutboxPruneCmd(open outboxOpener, h errors.Handler, now func() time.Time) *cobra.Command {
	var days int
	var dryRun bool
	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old recorded messages",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("older-than-days must be a positive integer")
			}
			cutoff := now().AddDate(0, 0, -days)
			return withOutbox(open, func(store outboxStore) error {
				n, err := store.Prune(c.Context(), cutoff, dryRun)
				if err != nil {
					return fmt.Errorf("prune failed: %w", err)
				}
				if dryRun {
					h.Info(fmt.Sprintf("Would delete %d message(s) older than %d days", n, days))
					return nil
				}
				h.Success(fmt.Sprintf("Deleted %d message(s) older than %d days", n, days))
				return nil
			})
		},
	}
	pruneCmd.Flags().IntVar(&days, "older-than-days", 0, "Delete messages recorded more than N days ago")
	pruneCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be deleted without deleting")
	return pruneCmd
}

func withOutbox(open outboxOpener, fn func(outboxStore) error) (err error) {
	store, err := open()
	if err != nil {
		return fmt.Errorf("open outbox: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close outbox: %w", cerr)
		}
	}()
	return fn(store)
}

func runOutboxList(ctx context.Context, store outboxStore, w io.Writer, limit int, now time.Time) error {
	if ctx == nil {
		ctx = context.Background()
	}
	total, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count messages: %w", err)
	}
	if total == 0 {
		_, err := fmt.Fprintln(w, "No messages recorded")
		return err
	}
	subs, err := store.List(ctx, limit)
	if err != nil {
		return fmt.Errorf("list messages: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%-36s  %-14s  %-20s  %s\n", "ID", "RECEIVED", "FROM", "SUBJECT"); err != nil {
		return err
	}
	for _, s := range subs {
		if _, err := fmt.Fprintf(w, "%-36s  %-14s  %-20s  %s\n",
			s.ID, humanize.RelTime(s.CreatedAt, now, "ago", "from now"), clip(s.Form.Name, 20), clip(s.Form.Subject, previewLength)); err != nil {
			return err
		}
	}
	if total > len(subs) {
		_, err := fmt.Fprintf(w, "... %s more\n", humanize.Comma(int64(total-len(subs))))
		return err
	}
	return nil
}

func printSubmission(w io.Writer, s contact.Submission) error {
	_, err := fmt.Fprintf(w, "ID:       %s\nReceived: %s\nFrom:     %s <%s>\nSubject:  %s\n\n%s\n",
		s.ID, s.CreatedAt.Local().Format(time.RFC1123), s.Form.Name, s.Form.Email, s.Form.Subject, s.Form.Message)
	return err
}

// clip shortens s to n runes with an ellipsis and flattens newlines.
func clip(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	cmd.RootCmd.AddCommand(NewOutboxCmd(openOutbox, notices, time.Now))
}
