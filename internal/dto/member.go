package dto

import (
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMemberRequest defines the payload for onboarding a member.
type CreateMemberRequest struct {
	UserID string `json:"userID" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

// UpdateMemberRequest defines the updatable profile fields of a member.
// Aggregates are never updatable through this surface.
type UpdateMemberRequest struct {
	Name *string `json:"name"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	MemberID      string          `json:"memberID"`
	UserID        string          `json:"userID"`
	MemberNumber  string          `json:"memberNumber"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	Points        int64           `json:"points"`
	TotalWeightKg decimal.Decimal `json:"totalWeightKg"`
	IsActive      bool            `json:"isActive"`
}

// ToMemberResponse converts a domain.Member to MemberResponse DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:      m.MemberID,
		UserID:        m.UserID,
		MemberNumber:  m.MemberNumber,
		Name:          m.Name,
		Balance:       m.Balance,
		Points:        m.Points,
		TotalWeightKg: m.TotalWeightKg,
		IsActive:      m.IsActive,
	}
}

// ToMemberResponses converts a slice of domain.Member to []MemberResponse.
func ToMemberResponses(members []domain.Member) []MemberResponse {
	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = ToMemberResponse(&members[i])
	}
	return responses
}
