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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const treasuryColumns = `treasury_id, treasury_number, direction, category, amount, member_id, note, transaction_date, transaction_time, created_at, created_by, last_updated_at, last_updated_by`

type PgxTreasuryRepository struct {
	BaseRepository
	memberRepo portsrepo.MemberTransactionSupport
}

// newPgxTreasuryRepository creates the repository owning the treasury posting,
// correction and reversal units. The withdrawal processor shares these units,
// since every withdrawal is a treasury record plus a ledger entry.
func newPgxTreasuryRepository(pool *pgxpool.Pool, memberRepo portsrepo.MemberTransactionSupport) portsrepo.TreasuryRepositoryFacade {
	return &PgxTreasuryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		memberRepo:     memberRepo,
	}
}

var _ portsrepo.TreasuryRepositoryFacade = (*PgxTreasuryRepository)(nil)

func scanTreasury(row pgx.Row) (*domain.Treasury, error) {
	var m models.Treasury
	err := row.Scan(
		&m.TreasuryID,
		&m.TreasuryNumber,
		&m.Direction,
		&m.Category,
		&m.Amount,
		&m.MemberID,
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
	d := mapping.ToDomainTreasury(m)
	return &d, nil
}

// hasLedgerLink reports whether a record must carry a linked ledger entry:
// withdrawal records always, operational-need records when tagged with a
// member.
func hasLedgerLink(t domain.Treasury) bool {
	return t.TouchesMember() || t.Protected()
}

// SaveTreasury posts a treasury record. With a non-nil entry the member row
// is locked, the delta applied and the entry completed with snapshots, all on
// the same transaction as the treasury insert.
func (r *PgxTreasuryRepository) SaveTreasury(ctx context.Context, treasury domain.Treasury, entry *domain.LedgerEntry, delta domain.MemberDelta) (*domain.Treasury, *domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	if entry != nil {
		member, err := r.memberRepo.FindMemberForUpdate(ctx, tx, entry.MemberID)
		if err != nil {
			return nil, nil, err
		}
		if !member.CanAbsorb(delta) {
			return nil, nil, fmt.Errorf("%w: posting would drive member %s aggregates negative", apperrors.ErrConflict, entry.MemberID)
		}

		entrySeq, err := nextSequenceInTx(ctx, tx, domain.LedgerNumberPrefix, entry.TransactionAt)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to allocate transaction number", err)
		}
		entry.TransactionNumber = numbering.Compact(domain.LedgerNumberPrefix, entry.TransactionAt, entrySeq)

		entry.BalanceBefore = member.Balance
		entry.PointsBefore = member.Points
		entry.BalanceAfter = member.Balance.Add(delta.Balance)
		entry.PointsAfter = member.Points + delta.Points

		if err := r.memberRepo.ApplyMemberDeltaInTx(ctx, tx, entry.MemberID, delta, entry.AdminID, entry.CreatedAt); err != nil {
			return nil, nil, err
		}
	}

	treasurySeq, err := nextSequenceInTx(ctx, tx, domain.TreasuryNumberPrefix, treasury.TransactionAt)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to allocate treasury number", err)
	}
	treasury.TreasuryNumber = numbering.Compact(domain.TreasuryNumberPrefix, treasury.TransactionAt, treasurySeq)

	m := mapping.ToModelTreasury(treasury)
	query := `
		INSERT INTO treasury_transactions (` + treasuryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.TreasuryID,
		m.TreasuryNumber,
		m.Direction,
		m.Category,
		m.Amount,
		m.MemberID,
		m.Note,
		m.TransactionDate,
		m.TransactionTime,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, nil, fmt.Errorf("%w: treasury record %s already exists", apperrors.ErrDuplicate, m.TreasuryID)
		}
		return nil, nil, fmt.Errorf("failed to insert treasury record %s: %w", m.TreasuryID, err)
	}

	if entry != nil {
		if err := insertLedgerEntryInTx(ctx, tx, *entry); err != nil {
			return nil, nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return &treasury, entry, nil
}

// UpdateTreasury applies a correction to a record's amount and note. For
// records with a linked ledger entry the member absorbs the delta and the
// entry is rewritten to the post-correction aggregates.
func (r *PgxTreasuryRepository) UpdateTreasury(ctx context.Context, treasury domain.Treasury, delta domain.MemberDelta) (*domain.Treasury, *domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	var entry *domain.LedgerEntry
	if hasLedgerLink(treasury) {
		memberID := *treasury.MemberID
		member, err := r.memberRepo.FindMemberForUpdate(ctx, tx, memberID)
		if err != nil {
			return nil, nil, err
		}
		if !member.CanAbsorb(delta) {
			return nil, nil, fmt.Errorf("%w: correction would drive member %s aggregates negative", apperrors.ErrConflict, memberID)
		}

		entry, err = findEntryBySourceInTx(ctx, tx, domain.TreasurySource(treasury.TreasuryID))
		if err != nil {
			return nil, nil, err
		}

		if err := r.memberRepo.ApplyMemberDeltaInTx(ctx, tx, memberID, delta, treasury.LastUpdatedBy, treasury.LastUpdatedAt); err != nil {
			return nil, nil, err
		}
		member.Apply(delta)

		entry.AmountBalance = treasury.Amount
		balanceEffect, pointsEffect := entry.Effect()
		entry.BalanceAfter = member.Balance
		entry.PointsAfter = member.Points
		entry.BalanceBefore = member.Balance.Sub(balanceEffect)
		entry.PointsBefore = member.Points - pointsEffect
		entry.Note = markCorrected(entry.Note)
		entry.LastUpdatedAt = treasury.LastUpdatedAt
		entry.LastUpdatedBy = treasury.LastUpdatedBy

		if err := rewriteLedgerEntryInTx(ctx, tx, *entry); err != nil {
			return nil, nil, err
		}
	}

	m := mapping.ToModelTreasury(treasury)
	query := `
		UPDATE treasury_transactions
		SET amount = $2, note = $3, last_updated_at = $4, last_updated_by = $5
		WHERE treasury_id = $1;
	`
	tag, err := tx.Exec(ctx, query, m.TreasuryID, m.Amount, m.Note, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update treasury record %s: %w", m.TreasuryID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil, apperrors.ErrNotFound
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return &treasury, entry, nil
}

// DeleteTreasury reverses any member-side effect, removes the linked ledger
// entry if present, then removes the treasury row.
func (r *PgxTreasuryRepository) DeleteTreasury(ctx context.Context, treasury domain.Treasury, delta domain.MemberDelta) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if hasLedgerLink(treasury) {
		memberID := *treasury.MemberID
		member, err := r.memberRepo.FindMemberForUpdate(ctx, tx, memberID)
		if err != nil {
			return err
		}
		if !member.CanAbsorb(delta) {
			return fmt.Errorf("%w: reversal would drive member %s aggregates negative", apperrors.ErrConflict, memberID)
		}

		if err := r.memberRepo.ApplyMemberDeltaInTx(ctx, tx, memberID, delta, treasury.LastUpdatedBy, treasury.LastUpdatedAt); err != nil {
			return err
		}

		if err := deleteLedgerEntryBySourceInTx(ctx, tx, domain.TreasurySource(treasury.TreasuryID)); err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM treasury_transactions WHERE treasury_id = $1;`, treasury.TreasuryID)
	if err != nil {
		return fmt.Errorf("failed to delete treasury record %s: %w", treasury.TreasuryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindTreasuryByID retrieves a treasury record by its ID.
func (r *PgxTreasuryRepository) FindTreasuryByID(ctx context.Context, treasuryID string) (*domain.Treasury, error) {
	query := `SELECT ` + treasuryColumns + ` FROM treasury_transactions WHERE treasury_id = $1;`
	treasury, err := scanTreasury(r.Pool.QueryRow(ctx, query, treasuryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find treasury record by ID %s: %w", treasuryID, err)
	}
	return treasury, nil
}

// ListTreasuries retrieves treasury records within a date range, newest
// first. Zero times mean no bound on that side.
func (r *PgxTreasuryRepository) ListTreasuries(ctx context.Context, from time.Time, to time.Time, limit int, offset int) ([]domain.Treasury, error) {
	query := `
		SELECT ` + treasuryColumns + `
		FROM treasury_transactions
		WHERE ($1::date IS NULL OR transaction_date >= $1)
		  AND ($2::date IS NULL OR transaction_date <= $2)
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $3 OFFSET $4;
	`
	var fromArg, toArg interface{}
	if !from.IsZero() {
		fromArg = from
	}
	if !to.IsZero() {
		toArg = to
	}

	rows, err := r.Pool.Query(ctx, query, fromArg, toArg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list treasury records: %w", err)
	}
	defer rows.Close()

	treasuries := make([]domain.Treasury, 0, limit)
	for rows.Next() {
		treasury, err := scanTreasury(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan treasury row: %w", err)
		}
		treasuries = append(treasuries, *treasury)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating treasury rows: %w", err)
	}
	return treasuries, nil
}
