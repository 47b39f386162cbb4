package models

import "github.com/shopspring/decimal"

// Deposit represents one row of the deposits table. The per-kg rates are the
// frozen copies taken from the category at post time.
type Deposit struct {
	DepositID     string          `db:"deposit_id"`
	DepositNumber string          `db:"deposit_number"`
	MemberID      string          `db:"member_id"`
	CategoryID    string          `db:"category_id"`
	WeightKg      decimal.Decimal `db:"weight_kg"`
	PricePerKg    decimal.Decimal `db:"price_per_kg"`
	PointsPerKg   decimal.Decimal `db:"points_per_kg"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	PointsEarned  int64           `db:"points_earned"`
	Note          string          `db:"note"`
	AuditFields
}
