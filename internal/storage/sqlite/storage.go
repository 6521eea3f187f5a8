// Package sqlite stores contact submissions in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eallis/wiifolio/internal/contact"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// timeLayout is fixed-width so created_at sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Outbox implements contact.Outbox on SQLite.
type Outbox struct {
	db *sql.DB
}

var _ contact.Outbox = (*Outbox)(nil)

// Open opens (creating if needed) the outbox database at dbPath and
// applies pending schema migrations.
func Open(dbPath string) (*Outbox, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite outbox: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite outbox: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite outbox: open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	o := &Outbox{db: db}
	if err := o.init(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return o, nil
}

// Close closes the underlying connection.
func (o *Outbox) Close() error {
	if o == nil || o.db == nil {
		return nil
	}
	return o.db.Close()
}

func (o *Outbox) init(ctx context.Context) error {
	if _, err := o.db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite outbox: set busy timeout: %w", err)
	}
	return migrate(ctx, o.db)
}

// Record inserts s. Recording the same ID twice is an error.
func (o *Outbox) Record(ctx context.Context, s contact.Submission) error {
	if s.ID == uuid.Nil {
		return fmt.Errorf("sqlite outbox: submission id is required")
	}
	_, err := o.db.ExecContext(ctx,
		`INSERT INTO submissions (id, name, email, subject, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID.String(), s.Form.Name, s.Form.Email, s.Form.Subject, s.Form.Message,
		s.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("sqlite outbox: record submission: %w", err)
	}
	return nil
}

// Get returns the submission with id, or contact.ErrSubmissionNotFound.
func (o *Outbox) Get(ctx context.Context, id uuid.UUID) (contact.Submission, error) {
	row := o.db.QueryRowContext(ctx,
		`SELECT id, name, email, subject, message, created_at
		 FROM submissions WHERE id = ?`, id.String())
	s, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return contact.Submission{}, fmt.Errorf("sqlite outbox: %w: %s", contact.ErrSubmissionNotFound, id)
	}
	if err != nil {
		return contact.Submission{}, fmt.Errorf("sqlite outbox: get submission: %w", err)
	}
	return s, nil
}

// List returns up to limit submissions, newest first. limit <= 0 means all.
func (o *Outbox) List(ctx context.Context, limit int) ([]contact.Submission, error) {
	query := `SELECT id, name, email, subject, message, created_at
		 FROM submissions ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := o.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite outbox: list submissions: %w", err)
	}
	defer rows.Close()

	var out []contact.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite outbox: scan submission: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite outbox: list submissions: %w", err)
	}
	return out, nil
}

// Count returns the number of stored submissions.
func (o *Outbox) Count(ctx context.Context) (int, error) {
	var n int
	if err := o.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM submissions").Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite outbox: count submissions: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(sc scanner) (contact.Submission, error) {
	var (
		s         contact.Submission
		id        string
		createdAt string
	)
	if err := sc.Scan(&id, &s.Form.Name, &s.Form.Email, &s.Form.Subject, &s.Form.Message, &createdAt); err != nil {
		return contact.Submission{}, err
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return contact.Submission{}, fmt.Errorf("invalid id %q: %w", id, err)
	}
	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return contact.Submission{}, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	s.ID = parsedID
	s.CreatedAt = ts
	return s, nil
}
