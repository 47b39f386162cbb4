package domain

import "github.com/shopspring/decimal"

// WasteCategory holds the current pricing for one kind of recyclable waste.
// Its rates are copied into each new deposit at post time; editing a category
// never changes the value of already-posted deposits.
type WasteCategory struct {
	CategoryID  string          `json:"categoryID"`
	Name        string          `json:"name"`
	PricePerKg  decimal.Decimal `json:"pricePerKg"`
	PointsPerKg decimal.Decimal `json:"pointsPerKg"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}
