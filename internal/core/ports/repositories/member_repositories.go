package repositories

import (
	"context"
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MemberReader defines read operations for member account data
type MemberReader interface {
	// FindMemberByID retrieves a specific member by its unique identifier.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// FindMemberByNumber retrieves a member by its human-readable member number.
	FindMemberByNumber(ctx context.Context, memberNumber string) (*domain.Member, error)

	// ListMembers retrieves a paginated list of active members.
	ListMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error)
}

// MemberWriter defines write operations for member account data
type MemberWriter interface {
	// SaveMember persists a new member with zeroed aggregates, assigning its
	// daily-sequence member number. Returns the completed record.
	SaveMember(ctx context.Context, member domain.Member) (*domain.Member, error)

	// UpdateMember updates a member's profile fields (never the aggregates).
	UpdateMember(ctx context.Context, member domain.Member) error

	// DeactivateMember marks a member as inactive.
	DeactivateMember(ctx context.Context, memberID string, adminID string, now time.Time) error

	// DeleteMember removes a member and, via cascade, its ledger history.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberTransactionSupport defines the operations the atomic posting units use.
type MemberTransactionSupport interface {
	// FindMemberForUpdate selects a member and locks its row for the duration
	// of the transaction.
	FindMemberForUpdate(ctx context.Context, tx pgx.Tx, memberID string) (*domain.Member, error)

	// ApplyMemberDeltaInTx applies a signed delta to the member's aggregates
	// within a given transaction.
	ApplyMemberDeltaInTx(ctx context.Context, tx pgx.Tx, memberID string, delta domain.MemberDelta, adminID string, now time.Time) error
}

// MemberRepositoryFacade combines all member-related repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
	MemberTransactionSupport
}
