package dto

import (
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListLedgerParams holds pagination parameters for ledger history.
type ListLedgerParams struct {
	Limit     int
	NextToken *string
}

// LedgerEntryResponse defines the data returned for one ledger entry.
type LedgerEntryResponse struct {
	EntryID           string          `json:"entryID"`
	TransactionNumber string          `json:"transactionNumber"`
	MemberID          string          `json:"memberID"`
	Direction         string          `json:"direction"`
	Category          string          `json:"category"`
	AmountBalance     decimal.Decimal `json:"amountBalance"`
	AmountPoints      int64           `json:"amountPoints"`
	BalanceBefore     decimal.Decimal `json:"balanceBefore"`
	BalanceAfter      decimal.Decimal `json:"balanceAfter"`
	PointsBefore      int64           `json:"pointsBefore"`
	PointsAfter       int64           `json:"pointsAfter"`
	SourceType        string          `json:"sourceType"`
	SourceID          string          `json:"sourceID,omitempty"`
	Note              string          `json:"note"`
	TransactionAt     time.Time       `json:"transactionAt"`
}

// LedgerHistoryResponse is a page of a member's ledger history.
type LedgerHistoryResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// MemberBalanceResponse is the read-side snapshot of a member's aggregates.
type MemberBalanceResponse struct {
	MemberID      string          `json:"memberID"`
	MemberNumber  string          `json:"memberNumber"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	Points        int64           `json:"points"`
	TotalWeightKg decimal.Decimal `json:"totalWeightKg"`
}

// LedgerSummaryRow is one aggregate line of the summary report.
type LedgerSummaryRow struct {
	Category     string          `json:"category"`
	Direction    string          `json:"direction"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
	TotalPoints  int64           `json:"totalPoints"`
	EntryCount   int64           `json:"entryCount"`
}

// LedgerSummaryResponse is the aggregate report for a date range.
type LedgerSummaryResponse struct {
	From time.Time          `json:"from"`
	To   time.Time          `json:"to"`
	Rows []LedgerSummaryRow `json:"rows"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:           e.EntryID,
		TransactionNumber: e.TransactionNumber,
		MemberID:          e.MemberID,
		Direction:         string(e.Direction),
		Category:          string(e.Category),
		AmountBalance:     e.AmountBalance,
		AmountPoints:      e.AmountPoints,
		BalanceBefore:     e.BalanceBefore,
		BalanceAfter:      e.BalanceAfter,
		PointsBefore:      e.PointsBefore,
		PointsAfter:       e.PointsAfter,
		SourceType:        string(e.Source.Type),
		SourceID:          e.Source.ID,
		Note:              e.Note,
		TransactionAt:     e.TransactionAt,
	}
}

// ToLedgerEntryResponses converts a slice of domain.LedgerEntry to []LedgerEntryResponse.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}

// ToLedgerSummaryRows converts domain.LedgerSummary rows to DTO rows.
func ToLedgerSummaryRows(summaries []domain.LedgerSummary) []LedgerSummaryRow {
	rows := make([]LedgerSummaryRow, len(summaries))
	for i, s := range summaries {
		rows[i] = LedgerSummaryRow{
			Category:     string(s.Category),
			Direction:    string(s.Direction),
			TotalBalance: s.TotalBalance,
			TotalPoints:  s.TotalPoints,
			EntryCount:   s.EntryCount,
		}
	}
	return rows
}
