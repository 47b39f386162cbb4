package dto

import (
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepositRequest defines the payload for posting a waste deposit.
type CreateDepositRequest struct {
	MemberID   string          `json:"memberID" binding:"required"`
	CategoryID string          `json:"categoryID" binding:"required"`
	WeightKg   decimal.Decimal `json:"weightKg" binding:"required"`
	Note       string          `json:"note"`
}

// UpdateDepositRequest defines the correction payload for a posted deposit.
// The stored rate basis stays frozen; only the weight is re-derived.
type UpdateDepositRequest struct {
	WeightKg decimal.Decimal `json:"weightKg" binding:"required"`
	Note     *string         `json:"note"`
}

// DepositReceipt is the submission surface's result: everything the receipt
// toast displays.
type DepositReceipt struct {
	DepositID     string          `json:"depositID"`
	DepositNumber string          `json:"depositNumber"`
	CategoryName  string          `json:"categoryName"`
	WeightKg      decimal.Decimal `json:"weightKg"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	PointsEarned  int64           `json:"pointsEarned"`
}

// DepositResponse defines the full data returned for a deposit record.
type DepositResponse struct {
	DepositID     string          `json:"depositID"`
	DepositNumber string          `json:"depositNumber"`
	MemberID      string          `json:"memberID"`
	CategoryID    string          `json:"categoryID"`
	WeightKg      decimal.Decimal `json:"weightKg"`
	PricePerKg    decimal.Decimal `json:"pricePerKg"`
	PointsPerKg   decimal.Decimal `json:"pointsPerKg"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	PointsEarned  int64           `json:"pointsEarned"`
	Note          string          `json:"note"`
}

// ToDepositResponse converts a domain.Deposit to DepositResponse DTO.
func ToDepositResponse(d *domain.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:     d.DepositID,
		DepositNumber: d.DepositNumber,
		MemberID:      d.MemberID,
		CategoryID:    d.CategoryID,
		WeightKg:      d.WeightKg,
		PricePerKg:    d.PricePerKg,
		PointsPerKg:   d.PointsPerKg,
		TotalPrice:    d.TotalPrice,
		PointsEarned:  d.PointsEarned,
		Note:          d.Note,
	}
}

// ToDepositResponses converts a slice of domain.Deposit to []DepositResponse.
func ToDepositResponses(deposits []domain.Deposit) []DepositResponse {
	responses := make([]DepositResponse, len(deposits))
	for i := range deposits {
		responses[i] = ToDepositResponse(&deposits[i])
	}
	return responses
}
