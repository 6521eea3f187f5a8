package sqlite

import (
	"context"
	"fmt"
	"time"
)

// Prune removes submissions created before cutoff and returns how many
// were (or, with dryRun, would be) removed.
func (o *Outbox) Prune(ctx context.Context, cutoff time.Time, dryRun bool) (int, error) {
	bound := cutoff.UTC().Format(timeLayout)

	var n int
	if err := o.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM submissions WHERE created_at < ?", bound).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite outbox: count submissions for prune: %w", err)
	}
	if n == 0 || dryRun {
		return n, nil
	}

	res, err := o.db.ExecContext(ctx, "DELETE FROM submissions WHERE created_at < ?", bound)
	if err != nil {
		return 0, fmt.Errorf("sqlite outbox: prune submissions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlite outbox: read rows affected: %w", err)
	}
	return int(affected), nil
}
