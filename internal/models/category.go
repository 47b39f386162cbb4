package models

import "github.com/shopspring/decimal"

// WasteCategory represents one row of the waste_categories table.
type WasteCategory struct {
	CategoryID  string          `db:"category_id"`
	Name        string          `db:"name"`
	PricePerKg  decimal.Decimal `db:"price_per_kg"`
	PointsPerKg decimal.Decimal `db:"points_per_kg"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}
