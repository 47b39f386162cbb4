package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/apperrors"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	portsrepo "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/repositories"
	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/middleware"
	"github.com/shopspring/decimal"
)

// categoryService manages waste categories and their current rates.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func validateRates(pricePerKg, pointsPerKg decimal.Decimal) error {
	if pricePerKg.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewFieldValidationError("pricePerKg", "must be greater than zero")
	}
	if pointsPerKg.IsNegative() {
		return apperrors.NewFieldValidationError("pointsPerKg", "must not be negative")
	}
	return nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, adminID string) (*dto.CategoryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateRates(req.PricePerKg, req.PointsPerKg); err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.WasteCategory{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		PricePerKg:  req.PricePerKg,
		PointsPerKg: req.PointsPerKg,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, err
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID), slog.String("name", category.Name))
	resp := dto.ToCategoryResponse(&category)
	return &resp, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

func (s *categoryService) ListCategories(ctx context.Context, includeInactive bool) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryResponses(categories), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, adminID string) (*dto.CategoryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.PricePerKg != nil {
		category.PricePerKg = *req.PricePerKg
	}
	if req.PointsPerKg != nil {
		category.PointsPerKg = *req.PointsPerKg
	}
	if err := validateRates(category.PricePerKg, category.PointsPerKg); err != nil {
		return nil, err
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = adminID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, err
	}

	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

func (s *categoryService) DeactivateCategory(ctx context.Context, categoryID string, adminID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.categoryRepo.DeactivateCategory(ctx, categoryID, adminID, time.Now()); err != nil {
		logger.Error("Failed to deactivate category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return err
	}
	logger.Info("Category deactivated", slog.String("category_id", categoryID))
	return nil
}
