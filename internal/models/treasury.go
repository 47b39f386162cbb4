package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Treasury represents one row of the treasury_transactions table.
// MemberID is NULL for movements that do not involve a member.
type Treasury struct {
	TreasuryID      string          `db:"treasury_id"`
	TreasuryNumber  string          `db:"treasury_number"`
	Direction       string          `db:"direction"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	MemberID        *string         `db:"member_id"`
	Note            string          `db:"note"`
	TransactionDate time.Time       `db:"transaction_date"`
	TransactionTime time.Time       `db:"transaction_time"`
	AuditFields
}
