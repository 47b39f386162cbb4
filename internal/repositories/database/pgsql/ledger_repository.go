package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/apperrors"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	portsrepo "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/repositories"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/models"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/utils/mapping"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/utils/numbering"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerColumns = `entry_id, transaction_number, member_id, direction, category, amount_balance, amount_points, balance_before, balance_after, points_before, points_after, deposit_id, treasury_id, admin_id, note, transaction_date, transaction_time, created_at, created_by, last_updated_at, last_updated_by`

type PgxLedgerRepository struct {
	BaseRepository
	memberRepo portsrepo.MemberTransactionSupport
}

// newPgxLedgerRepository creates the repository over the ledger. Its only
// posting unit is for standalone entries; entries linked to deposits or
// treasury records are written by those repositories.
func newPgxLedgerRepository(pool *pgxpool.Pool, memberRepo portsrepo.MemberTransactionSupport) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		memberRepo:     memberRepo,
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func scanLedgerEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.TransactionNumber,
		&m.MemberID,
		&m.Direction,
		&m.Category,
		&m.AmountBalance,
		&m.AmountPoints,
		&m.BalanceBefore,
		&m.BalanceAfter,
		&m.PointsBefore,
		&m.PointsAfter,
		&m.DepositID,
		&m.TreasuryID,
		&m.AdminID,
		&m.Note,
		&m.TransactionDate,
		&m.TransactionTime,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainLedgerEntry(m)
	return &d, nil
}

// sourceColumn maps a source link onto the column that carries it.
func sourceColumn(source domain.EntrySource) (string, error) {
	switch source.Type {
	case domain.SourceDeposit:
		return "deposit_id", nil
	case domain.SourceTreasury:
		return "treasury_id", nil
	default:
		return "", fmt.Errorf("%w: ledger entries without a source cannot be looked up by source", apperrors.ErrValidation)
	}
}

// FindEntryByID retrieves a ledger entry by its ID.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	entry, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	return entry, nil
}

// FindEntryBySource retrieves the entry linked to an originating deposit or
// treasury record.
func (r *PgxLedgerRepository) FindEntryBySource(ctx context.Context, source domain.EntrySource) (*domain.LedgerEntry, error) {
	column, err := sourceColumn(source)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE ` + column + ` = $1;`
	entry, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, source.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry for %s %s: %w", source.Type, source.ID, err)
	}
	return entry, nil
}

// ListEntriesByMember retrieves a member's ledger history newest first using
// token pagination. The returned token is nil when no further page exists.
func (r *PgxLedgerRepository) ListEntriesByMember(ctx context.Context, memberID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := []interface{}{memberID, limit + 1}
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE member_id = $1
	`
	if nextToken != nil && *nextToken != "" {
		transactionAt, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (transaction_date, created_at) < ($3, $4)`
		args = append(args, transactionAt, createdAt)
	}
	query += `
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list ledger entries for member %s: %w", memberID, err)
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0, limit+1)
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		t := pagination.EncodeToken(last.TransactionAt, last.CreatedAt)
		token = &t
	}
	return entries, token, nil
}

// SummarizeByCategory aggregates entry totals per category and direction
// within the date range.
func (r *PgxLedgerRepository) SummarizeByCategory(ctx context.Context, from time.Time, to time.Time) ([]domain.LedgerSummary, error) {
	query := `
		SELECT category, direction, COALESCE(SUM(amount_balance), 0), COALESCE(SUM(amount_points), 0), COUNT(*)
		FROM ledger_entries
		WHERE transaction_date >= $1 AND transaction_date <= $2
		GROUP BY category, direction
		ORDER BY category, direction;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ledger: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.LedgerSummary, 0)
	for rows.Next() {
		var s domain.LedgerSummary
		if err := rows.Scan(&s.Category, &s.Direction, &s.TotalBalance, &s.TotalPoints, &s.EntryCount); err != nil {
			return nil, fmt.Errorf("failed to scan ledger summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger summary rows: %w", err)
	}
	return summaries, nil
}

// SaveEntry posts a standalone ledger entry as one transaction: member row
// lock, sequence number, aggregate update and entry insert all commit
// together or roll back together.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry, delta domain.MemberDelta) (*domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	member, err := r.memberRepo.FindMemberForUpdate(ctx, tx, entry.MemberID)
	if err != nil {
		return nil, err
	}
	if !member.CanAbsorb(delta) {
		return nil, fmt.Errorf("%w: posting would drive member %s aggregates negative", apperrors.ErrConflict, entry.MemberID)
	}

	entrySeq, err := nextSequenceInTx(ctx, tx, domain.LedgerNumberPrefix, entry.TransactionAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate transaction number", err)
	}
	entry.TransactionNumber = numbering.Compact(domain.LedgerNumberPrefix, entry.TransactionAt, entrySeq)

	entry.BalanceBefore = member.Balance
	entry.PointsBefore = member.Points
	entry.BalanceAfter = member.Balance.Add(delta.Balance)
	entry.PointsAfter = member.Points + delta.Points

	if err := r.memberRepo.ApplyMemberDeltaInTx(ctx, tx, entry.MemberID, delta, entry.AdminID, entry.CreatedAt); err != nil {
		return nil, err
	}

	if err := insertLedgerEntryInTx(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// insertLedgerEntryInTx writes a completed ledger entry on the caller's
// transaction. Every posting unit funnels through here so the column list
// lives in one place.
func insertLedgerEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.TransactionNumber,
		m.MemberID,
		m.Direction,
		m.Category,
		m.AmountBalance,
		m.AmountPoints,
		m.BalanceBefore,
		m.BalanceAfter,
		m.PointsBefore,
		m.PointsAfter,
		m.DepositID,
		m.TreasuryID,
		m.AdminID,
		m.Note,
		m.TransactionDate,
		m.TransactionTime,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry %s: %w", m.EntryID, err)
	}
	return nil
}

// findEntryBySourceInTx loads and locks the ledger entry linked to a source
// record. A posting unit correcting or reversing a record without its entry
// is a broken invariant, reported as an internal error.
func findEntryBySourceInTx(ctx context.Context, tx pgx.Tx, source domain.EntrySource) (*domain.LedgerEntry, error) {
	column, err := sourceColumn(source)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE ` + column + ` = $1 FOR UPDATE;`
	entry, err := scanLedgerEntry(tx.QueryRow(ctx, query, source.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no ledger entry linked to %s %s", apperrors.ErrInternal, source.Type, source.ID)
		}
		return nil, fmt.Errorf("failed to lock ledger entry for %s %s: %w", source.Type, source.ID, err)
	}
	return entry, nil
}

// rewriteLedgerEntryInTx applies a correction to an entry's amounts,
// snapshots and note.
func rewriteLedgerEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		UPDATE ledger_entries
		SET amount_balance = $2,
		    amount_points = $3,
		    balance_before = $4,
		    balance_after = $5,
		    points_before = $6,
		    points_after = $7,
		    note = $8,
		    last_updated_at = $9,
		    last_updated_by = $10
		WHERE entry_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.EntryID,
		m.AmountBalance,
		m.AmountPoints,
		m.BalanceBefore,
		m.BalanceAfter,
		m.PointsBefore,
		m.PointsAfter,
		m.Note,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to rewrite ledger entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: ledger entry %s vanished during correction", apperrors.ErrInternal, m.EntryID)
	}
	return nil
}

// deleteLedgerEntryBySourceInTx removes the entry linked to a source record.
func deleteLedgerEntryBySourceInTx(ctx context.Context, tx pgx.Tx, source domain.EntrySource) error {
	column, err := sourceColumn(source)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE `+column+` = $1;`, source.ID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry for %s %s: %w", source.Type, source.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: no ledger entry linked to %s %s", apperrors.ErrInternal, source.Type, source.ID)
	}
	return nil
}
