package services

import (
	"context"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
)

// CategorySvcFacade defines waste category management operations.
type CategorySvcFacade interface {
	// CreateCategory creates a waste category with its current rates.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, adminID string) (*dto.CategoryResponse, error)

	// GetCategoryByID retrieves a specific category by its ID.
	GetCategoryByID(ctx context.Context, categoryID string) (*dto.CategoryResponse, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context, includeInactive bool) ([]dto.CategoryResponse, error)

	// UpdateCategory updates a category's name or rates; posted deposits keep
	// their frozen rates.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, adminID string) (*dto.CategoryResponse, error)

	// DeactivateCategory marks a category as inactive.
	DeactivateCategory(ctx context.Context, categoryID string, adminID string) error
}
