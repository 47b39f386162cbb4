package dto

import (
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTreasuryRequest defines the payload for recording an organization
// money movement. Member-withdrawal records cannot be posted here; they are
// owned by the withdrawal surface.
type CreateTreasuryRequest struct {
	Direction string          `json:"direction" binding:"required,oneof=IN OUT"`
	Category  string          `json:"category" binding:"required,oneof=SALE_TO_BUYER OPERATIONAL_NEED"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	MemberID  *string         `json:"memberID"`
	Note      string          `json:"note"`
}

// UpdateTreasuryRequest defines the correction payload for a treasury record.
// Direction, category and member cannot be retargeted; delete and re-post instead.
type UpdateTreasuryRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   *string         `json:"note"`
}

// TreasuryResponse defines the data returned for a treasury record.
type TreasuryResponse struct {
	TreasuryID     string          `json:"treasuryID"`
	TreasuryNumber string          `json:"treasuryNumber"`
	Direction      string          `json:"direction"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	MemberID       *string         `json:"memberID,omitempty"`
	Note           string          `json:"note"`
	TransactionAt  time.Time       `json:"transactionAt"`
}

// ToTreasuryResponse converts a domain.Treasury to TreasuryResponse DTO.
func ToTreasuryResponse(t *domain.Treasury) TreasuryResponse {
	return TreasuryResponse{
		TreasuryID:     t.TreasuryID,
		TreasuryNumber: t.TreasuryNumber,
		Direction:      string(t.Direction),
		Category:       string(t.Category),
		Amount:         t.Amount,
		MemberID:       t.MemberID,
		Note:           t.Note,
		TransactionAt:  t.TransactionAt,
	}
}

// ToTreasuryResponses converts a slice of domain.Treasury to []TreasuryResponse.
func ToTreasuryResponses(treasuries []domain.Treasury) []TreasuryResponse {
	responses := make([]TreasuryResponse, len(treasuries))
	for i := range treasuries {
		responses[i] = ToTreasuryResponse(&treasuries[i])
	}
	return responses
}
