package models

import "github.com/shopspring/decimal"

// Member represents one row of the members table.
type Member struct {
	MemberID      string          `db:"member_id"`
	UserID        string          `db:"user_id"`
	MemberNumber  string          `db:"member_number"`
	Name          string          `db:"name"`
	Balance       decimal.Decimal `db:"balance"`
	Points        int64           `db:"points"`
	TotalWeightKg decimal.Decimal `db:"total_weight_kg"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
