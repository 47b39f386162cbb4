package services

import (
	"context"
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
)

// ReportingSvcFacade defines the read-side query surface consumed by
// dashboards and reports.
type ReportingSvcFacade interface {
	// GetMemberBalance returns a member's current aggregates.
	GetMemberBalance(ctx context.Context, memberID string) (*dto.MemberBalanceResponse, error)

	// ListMemberLedger returns a page of a member's ledger history.
	ListMemberLedger(ctx context.Context, memberID string, params dto.ListLedgerParams) (*dto.LedgerHistoryResponse, error)

	// SummarizeLedger aggregates ledger totals by category and direction
	// within the date range.
	SummarizeLedger(ctx context.Context, from time.Time, to time.Time) (*dto.LedgerSummaryResponse, error)
}
