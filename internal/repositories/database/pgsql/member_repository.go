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

const memberColumns = `member_id, user_id, member_number, name, balance, points, total_weight_kg, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxMemberRepository struct {
	BaseRepository
}

// newPgxMemberRepository creates a new repository for member account data.
func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.MemberID,
		&m.UserID,
		&m.MemberNumber,
		&m.Name,
		&m.Balance,
		&m.Points,
		&m.TotalWeightKg,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainMember(m)
	return &d, nil
}

// SaveMember inserts a new member, allocating its member number from the
// daily sequence inside the same transaction as the insert.
func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) (*domain.Member, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	seq, err := nextSequenceInTx(ctx, tx, domain.MemberNumberPrefix, member.CreatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate member number", err)
	}
	member.MemberNumber = numbering.Dashed(domain.MemberNumberPrefix, member.CreatedAt, seq)

	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO members (member_id, user_id, member_number, name, balance, points, total_weight_kg, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.MemberID,
		m.UserID,
		m.MemberNumber,
		m.Name,
		m.Balance,
		m.Points,
		m.TotalWeightKg,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: member for user %s already exists", apperrors.ErrDuplicate, m.UserID)
		}
		return nil, fmt.Errorf("failed to save member %s: %w", m.MemberID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &member, nil
}

// FindMemberByID retrieves a member by its ID.
func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1;`
	member, err := scanMember(r.Pool.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by ID %s: %w", memberID, err)
	}
	return member, nil
}

// FindMemberByNumber retrieves a member by its human-readable member number.
func (r *PgxMemberRepository) FindMemberByNumber(ctx context.Context, memberNumber string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_number = $1;`
	member, err := scanMember(r.Pool.QueryRow(ctx, query, memberNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by number %s: %w", memberNumber, err)
	}
	return member, nil
}

// ListMembers retrieves a paginated list of active members, ordered by member
// number.
func (r *PgxMemberRepository) ListMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE is_active = TRUE
		ORDER BY member_number
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := make([]domain.Member, 0, limit)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return members, nil
}

// UpdateMember updates a member's profile fields. The aggregate columns are
// deliberately absent from the statement.
func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		UPDATE members
		SET name = $2, user_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE member_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.MemberID, m.Name, m.UserID, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update member %s: %w", m.MemberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateMember marks a member as inactive.
func (r *PgxMemberRepository) DeactivateMember(ctx context.Context, memberID string, adminID string, now time.Time) error {
	query := `
		UPDATE members
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE member_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, memberID, now, adminID)
	if err != nil {
		return fmt.Errorf("failed to deactivate member %s: %w", memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMember removes a member row. The ledger foreign key cascades, so the
// member's history goes with it.
func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM members WHERE member_id = $1;`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member %s: %w", memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindMemberForUpdate selects a member and locks its row until the caller's
// transaction ends. Every read-modify-write of the aggregates goes through
// this lock.
func (r *PgxMemberRepository) FindMemberForUpdate(ctx context.Context, tx pgx.Tx, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1 FOR UPDATE;`
	member, err := scanMember(tx.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock member %s: %w", memberID, err)
	}
	return member, nil
}

// ApplyMemberDeltaInTx adds the signed delta to the member's aggregates
// within the caller's transaction. Callers hold the row lock from
// FindMemberForUpdate and have already checked the delta is absorbable.
func (r *PgxMemberRepository) ApplyMemberDeltaInTx(ctx context.Context, tx pgx.Tx, memberID string, delta domain.MemberDelta, adminID string, now time.Time) error {
	query := `
		UPDATE members
		SET balance = balance + $2,
		    points = points + $3,
		    total_weight_kg = total_weight_kg + $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE member_id = $1;
	`
	tag, err := tx.Exec(ctx, query, memberID, delta.Balance, delta.Points, delta.WeightKg, now, adminID)
	if err != nil {
		return fmt.Errorf("failed to apply delta to member %s: %w", memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
