package repositories

import (
	"context"
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
)

// LedgerReader defines read operations over the member ledger.
type LedgerReader interface {
	// FindEntryByID retrieves a specific ledger entry by its identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// FindEntryBySource retrieves the entry linked to an originating deposit
	// or treasury record.
	FindEntryBySource(ctx context.Context, source domain.EntrySource) (*domain.LedgerEntry, error)

	// ListEntriesByMember retrieves a member's ledger history, newest first,
	// using token pagination.
	ListEntriesByMember(ctx context.Context, memberID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// SummarizeByCategory aggregates entry totals per category and direction
	// within the date range.
	SummarizeByCategory(ctx context.Context, from time.Time, to time.Time) ([]domain.LedgerSummary, error)
}

// LedgerWriter is the posting unit for entries with no originating record,
// used by the point exchange processor. Entries linked to deposits or
// treasury records are written by those repositories' own posting units.
type LedgerWriter interface {
	// SaveEntry posts a standalone ledger entry atomically: the member is
	// locked, the delta applied, and the entry completed with its sequence
	// number and snapshots. Returns the completed entry.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry, delta domain.MemberDelta) (*domain.LedgerEntry, error)
}

// LedgerRepositoryFacade combines the ledger read and write interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
