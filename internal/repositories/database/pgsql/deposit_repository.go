package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const depositColumns = `deposit_id, deposit_number, member_id, category_id, weight_kg, price_per_kg, points_per_kg, total_price, points_earned, note, created_at, created_by, last_updated_at, last_updated_by`

// correctionMarker is appended to a ledger entry's note when a correction
// rewrites it, so the history shows the entry no longer reflects the original
// posting.
const correctionMarker = " (updated)"

func markCorrected(note string) string {
	if strings.HasSuffix(note, correctionMarker) {
		return note
	}
	return note + correctionMarker
}

type PgxDepositRepository struct {
	BaseRepository
	memberRepo portsrepo.MemberTransactionSupport
}

// newPgxDepositRepository creates the repository owning the deposit posting,
// correction and reversal units.
func newPgxDepositRepository(pool *pgxpool.Pool, memberRepo portsrepo.MemberTransactionSupport) portsrepo.DepositRepositoryFacade {
	return &PgxDepositRepository{
		BaseRepository: BaseRepository{Pool: pool},
		memberRepo:     memberRepo,
	}
}

var _ portsrepo.DepositRepositoryFacade = (*PgxDepositRepository)(nil)

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var m models.Deposit
	err := row.Scan(
		&m.DepositID,
		&m.DepositNumber,
		&m.MemberID,
		&m.CategoryID,
		&m.WeightKg,
		&m.PricePerKg,
		&m.PointsPerKg,
		&m.TotalPrice,
		&m.PointsEarned,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainDeposit(m)
	return &d, nil
}

// SaveDeposit posts a deposit as one transaction: member row lock, sequence
// numbers, aggregate update, deposit insert and ledger insert all commit
// together or roll back together.
func (r *PgxDepositRepository) SaveDeposit(ctx context.Context, deposit domain.Deposit, entry domain.LedgerEntry) (*domain.Deposit, *domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	member, err := r.memberRepo.FindMemberForUpdate(ctx, tx, deposit.MemberID)
	if err != nil {
		return nil, nil, err
	}

	depositSeq, err := nextSequenceInTx(ctx, tx, domain.DepositNumberPrefix, deposit.CreatedAt)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to allocate deposit number", err)
	}
	deposit.DepositNumber = numbering.Dashed(domain.DepositNumberPrefix, deposit.CreatedAt, depositSeq)

	entrySeq, err := nextSequenceInTx(ctx, tx, domain.LedgerNumberPrefix, entry.TransactionAt)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to allocate transaction number", err)
	}
	entry.TransactionNumber = numbering.Compact(domain.LedgerNumberPrefix, entry.TransactionAt, entrySeq)

	delta := deposit.Delta()
	entry.BalanceBefore = member.Balance
	entry.PointsBefore = member.Points
	entry.BalanceAfter = member.Balance.Add(delta.Balance)
	entry.PointsAfter = member.Points + delta.Points

	if err := r.memberRepo.ApplyMemberDeltaInTx(ctx, tx, deposit.MemberID, delta, entry.AdminID, deposit.CreatedAt); err != nil {
		return nil, nil, err
	}

	m := mapping.ToModelDeposit(deposit)
	query := `
		INSERT INTO deposits (` + depositColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, query,
		m.DepositID,
		m.DepositNumber,
		m.MemberID,
		m.CategoryID,
		m.WeightKg,
		m.PricePerKg,
		m.PointsPerKg,
		m.TotalPrice,
		m.PointsEarned,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, nil, fmt.Errorf("%w: deposit %s already exists", apperrors.ErrDuplicate, m.DepositID)
		}
		return nil, nil, fmt.Errorf("failed to insert deposit %s: %w", m.DepositID, err)
	}

	if err := insertLedgerEntryInTx(ctx, tx, entry); err != nil {
		return nil, nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return &deposit, &entry, nil
}

// UpdateDeposit applies a correction. The deposit passed in already carries
// its re-derived values; delta is the difference between the new effect and
// the old one. The linked ledger entry is rewritten so its amounts match the
// corrected deposit and its snapshots match the member's post-correction
// aggregates.
func (r *PgxDepositRepository) UpdateDeposit(ctx context.Context, deposit domain.Deposit, delta domain.MemberDelta) (*domain.Deposit, *domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	member, err := r.memberRepo.FindMemberForUpdate(ctx, tx, deposit.MemberID)
	if err != nil {
		return nil, nil, err
	}
	if !member.CanAbsorb(delta) {
		return nil, nil, fmt.Errorf("%w: correction would drive member %s aggregates negative", apperrors.ErrConflict, deposit.MemberID)
	}

	entry, err := findEntryBySourceInTx(ctx, tx, domain.DepositSource(deposit.DepositID))
	if err != nil {
		return nil, nil, err
	}

	if err := r.memberRepo.ApplyMemberDeltaInTx(ctx, tx, deposit.MemberID, delta, deposit.LastUpdatedBy, deposit.LastUpdatedAt); err != nil {
		return nil, nil, err
	}
	member.Apply(delta)

	entry.AmountBalance = deposit.TotalPrice
	entry.AmountPoints = deposit.PointsEarned
	entry.BalanceAfter = member.Balance
	entry.PointsAfter = member.Points
	entry.BalanceBefore = member.Balance.Sub(deposit.TotalPrice)
	entry.PointsBefore = member.Points - deposit.PointsEarned
	entry.Note = markCorrected(entry.Note)
	entry.LastUpdatedAt = deposit.LastUpdatedAt
	entry.LastUpdatedBy = deposit.LastUpdatedBy

	if err := rewriteLedgerEntryInTx(ctx, tx, *entry); err != nil {
		return nil, nil, err
	}

	m := mapping.ToModelDeposit(deposit)
	query := `
		UPDATE deposits
		SET weight_kg = $2, total_price = $3, points_earned = $4, note = $5, last_updated_at = $6, last_updated_by = $7
		WHERE deposit_id = $1;
	`
	tag, err := tx.Exec(ctx, query, m.DepositID, m.WeightKg, m.TotalPrice, m.PointsEarned, m.Note, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update deposit %s: %w", m.DepositID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil, apperrors.ErrNotFound
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return &deposit, entry, nil
}

// DeleteDeposit reverses the deposit's full effect on the member, removes the
// linked ledger entry, then removes the deposit row.
func (r *PgxDepositRepository) DeleteDeposit(ctx context.Context, deposit domain.Deposit) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	member, err := r.memberRepo.FindMemberForUpdate(ctx, tx, deposit.MemberID)
	if err != nil {
		return err
	}
	delta := deposit.Delta().Neg()
	if !member.CanAbsorb(delta) {
		return fmt.Errorf("%w: reversal would drive member %s aggregates negative", apperrors.ErrConflict, deposit.MemberID)
	}

	if err := r.memberRepo.ApplyMemberDeltaInTx(ctx, tx, deposit.MemberID, delta, deposit.LastUpdatedBy, deposit.LastUpdatedAt); err != nil {
		return err
	}

	if err := deleteLedgerEntryBySourceInTx(ctx, tx, domain.DepositSource(deposit.DepositID)); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM deposits WHERE deposit_id = $1;`, deposit.DepositID)
	if err != nil {
		return fmt.Errorf("failed to delete deposit %s: %w", deposit.DepositID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindDepositByID retrieves a deposit by its ID.
func (r *PgxDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE deposit_id = $1;`
	deposit, err := scanDeposit(r.Pool.QueryRow(ctx, query, depositID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deposit by ID %s: %w", depositID, err)
	}
	return deposit, nil
}

// ListDepositsByMember retrieves a member's deposits, newest first.
func (r *PgxDepositRepository) ListDepositsByMember(ctx context.Context, memberID string, limit int, offset int) ([]domain.Deposit, error) {
	query := `
		SELECT ` + depositColumns + `
		FROM deposits
		WHERE member_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, memberID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits for member %s: %w", memberID, err)
	}
	defer rows.Close()

	deposits := make([]domain.Deposit, 0, limit)
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deposit row: %w", err)
		}
		deposits = append(deposits, *deposit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deposit rows: %w", err)
	}
	return deposits, nil
}
