package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/apperrors"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	portsrepo "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/repositories"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/models"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `category_id, name, price_per_kg, points_per_kg, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxCategoryRepository creates a new repository for waste category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (*domain.WasteCategory, error) {
	var m models.WasteCategory
	err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.PricePerKg,
		&m.PointsPerKg,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainWasteCategory(m)
	return &d, nil
}

// SaveCategory inserts a new waste category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.WasteCategory) error {
	m := mapping.ToModelWasteCategory(category)
	query := `
		INSERT INTO waste_categories (category_id, name, price_per_kg, points_per_kg, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.PricePerKg,
		m.PointsPerKg,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category named %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", m.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a waste category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.WasteCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM waste_categories WHERE category_id = $1;`
	category, err := scanCategory(r.pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return category, nil
}

// ListCategories retrieves all categories, optionally including inactive ones.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]domain.WasteCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM waste_categories WHERE is_active = TRUE OR $1 ORDER BY name;`
	rows, err := r.pool.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.WasteCategory, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

// UpdateCategory updates a category's name and current rates. Posted deposits
// carry their own frozen copies of the rates and are untouched.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.WasteCategory) error {
	m := mapping.ToModelWasteCategory(category)
	query := `
		UPDATE waste_categories
		SET name = $2, price_per_kg = $3, points_per_kg = $4, last_updated_at = $5, last_updated_by = $6
		WHERE category_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, m.CategoryID, m.Name, m.PricePerKg, m.PointsPerKg, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category named %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateCategory marks a category as inactive.
func (r *PgxCategoryRepository) DeactivateCategory(ctx context.Context, categoryID string, adminID string, now time.Time) error {
	query := `
		UPDATE waste_categories
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE category_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, categoryID, now, adminID)
	if err != nil {
		return fmt.Errorf("failed to deactivate category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
