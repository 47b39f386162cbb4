package repositories

import (
	"context"
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
)

// CategoryReader defines read operations for waste category data
type CategoryReader interface {
	// FindCategoryByID retrieves a specific waste category by its identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.WasteCategory, error)

	// ListCategories retrieves all categories, optionally including inactive ones.
	ListCategories(ctx context.Context, includeInactive bool) ([]domain.WasteCategory, error)
}

// CategoryWriter defines write operations for waste category data
type CategoryWriter interface {
	// SaveCategory persists a new waste category.
	SaveCategory(ctx context.Context, category domain.WasteCategory) error

	// UpdateCategory updates a category's name and current rates. Posted
	// deposits keep their frozen rates.
	UpdateCategory(ctx context.Context, category domain.WasteCategory) error

	// DeactivateCategory marks a category as inactive.
	DeactivateCategory(ctx context.Context, categoryID string, adminID string, now time.Time) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
