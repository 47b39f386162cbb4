package repositories

import (
	"context"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
)

// DepositReader defines read operations for deposit data
type DepositReader interface {
	// FindDepositByID retrieves a specific deposit by its identifier.
	FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error)

	// ListDepositsByMember retrieves a paginated list of a member's deposits,
	// newest first.
	ListDepositsByMember(ctx context.Context, memberID string, limit int, offset int) ([]domain.Deposit, error)
}

// DepositWriter defines the atomic posting, correction and reversal units for
// deposits. Every method runs as one database transaction: member aggregate
// update + deposit row + ledger entry all apply, or none do.
type DepositWriter interface {
	// SaveDeposit posts a new deposit. The deposit and entry carry everything
	// except their daily-sequence numbers and the entry's before/after
	// snapshots, which are assigned under the member row lock. Returns the
	// completed records.
	SaveDeposit(ctx context.Context, deposit domain.Deposit, entry domain.LedgerEntry) (*domain.Deposit, *domain.LedgerEntry, error)

	// UpdateDeposit applies a correction: the deposit row takes the new
	// weight-derived values, the member absorbs the delta, and the linked
	// ledger entry is rewritten to the member's post-update aggregates.
	UpdateDeposit(ctx context.Context, deposit domain.Deposit, delta domain.MemberDelta) (*domain.Deposit, *domain.LedgerEntry, error)

	// DeleteDeposit reverses the deposit's full effect on the member, then
	// deletes the linked ledger entry and the deposit row, in that order.
	DeleteDeposit(ctx context.Context, deposit domain.Deposit) error
}

// DepositRepositoryFacade combines all deposit-related repository interfaces
type DepositRepositoryFacade interface {
	DepositReader
	DepositWriter
}
