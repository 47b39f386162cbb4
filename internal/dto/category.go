package dto

import (
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the payload for creating a waste category.
type CreateCategoryRequest struct {
	Name        string          `json:"name" binding:"required"`
	PricePerKg  decimal.Decimal `json:"pricePerKg" binding:"required"`
	PointsPerKg decimal.Decimal `json:"pointsPerKg"`
}

// UpdateCategoryRequest defines the updatable fields of a waste category.
// Rate changes affect future deposits only.
type UpdateCategoryRequest struct {
	Name        *string          `json:"name"`
	PricePerKg  *decimal.Decimal `json:"pricePerKg"`
	PointsPerKg *decimal.Decimal `json:"pointsPerKg"`
}

// CategoryResponse defines the data returned for a waste category.
type CategoryResponse struct {
	CategoryID  string          `json:"categoryID"`
	Name        string          `json:"name"`
	PricePerKg  decimal.Decimal `json:"pricePerKg"`
	PointsPerKg decimal.Decimal `json:"pointsPerKg"`
	IsActive    bool            `json:"isActive"`
}

// ToCategoryResponse converts a domain.WasteCategory to CategoryResponse DTO.
func ToCategoryResponse(c *domain.WasteCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		PricePerKg:  c.PricePerKg,
		PointsPerKg: c.PointsPerKg,
		IsActive:    c.IsActive,
	}
}

// ToCategoryResponses converts a slice of domain.WasteCategory to []CategoryResponse.
func ToCategoryResponses(categories []domain.WasteCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}
