package repositories

import (
	"context"
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
)

// TreasuryReader defines read operations for treasury data
type TreasuryReader interface {
	// FindTreasuryByID retrieves a specific treasury record by its identifier.
	FindTreasuryByID(ctx context.Context, treasuryID string) (*domain.Treasury, error)

	// ListTreasuries retrieves a paginated list of treasury records within a
	// date range, newest first. Zero times mean no bound.
	ListTreasuries(ctx context.Context, from time.Time, to time.Time, limit int, offset int) ([]domain.Treasury, error)
}

// TreasuryWriter defines the atomic posting, correction and reversal units
// shared by the treasury and withdrawal processors. A nil entry means the
// record has no member-side effect; with an entry present, the member
// aggregate update, the treasury row and the ledger entry all apply inside
// one database transaction, or none do.
type TreasuryWriter interface {
	// SaveTreasury posts a treasury record, assigning its daily-sequence
	// number. When entry is non-nil the member is locked, delta applied, and
	// the entry completed with snapshots. Returns the completed records
	// (entry nil when no member-side effect exists).
	SaveTreasury(ctx context.Context, treasury domain.Treasury, entry *domain.LedgerEntry, delta domain.MemberDelta) (*domain.Treasury, *domain.LedgerEntry, error)

	// UpdateTreasury applies a correction to the record's amount and note.
	// When the record has a linked ledger entry, the member absorbs the delta
	// and the entry is rewritten to the post-update aggregates.
	UpdateTreasury(ctx context.Context, treasury domain.Treasury, delta domain.MemberDelta) (*domain.Treasury, *domain.LedgerEntry, error)

	// DeleteTreasury reverses any member-side effect, deletes the linked
	// ledger entry if present, then deletes the treasury row.
	DeleteTreasury(ctx context.Context, treasury domain.Treasury, delta domain.MemberDelta) error
}

// TreasuryRepositoryFacade combines all treasury-related repository interfaces
type TreasuryRepositoryFacade interface {
	TreasuryReader
	TreasuryWriter
}
