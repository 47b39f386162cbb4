package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// nextSequenceInTx allocates the next value of a per-prefix daily counter on
// the caller's transaction. The upsert increments and returns in a single
// statement, so two concurrent allocations can never observe the same value;
// the counter row stays locked until the caller commits.
func nextSequenceInTx(ctx context.Context, tx pgx.Tx, prefix string, date time.Time) (int64, error) {
	query := `
		INSERT INTO daily_sequences (prefix, seq_date, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, seq_date)
		DO UPDATE SET last_value = daily_sequences.last_value + 1
		RETURNING last_value;
	`
	var seq int64
	if err := tx.QueryRow(ctx, query, prefix, date.Format("2006-01-02")).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to allocate %s sequence: %w", prefix, err)
	}
	return seq, nil
}
