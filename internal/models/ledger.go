package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents one row of the ledger_entries table. DepositID and
// TreasuryID carry the discriminated source link; a CHECK constraint keeps at
// most one of them set.
type LedgerEntry struct {
	EntryID           string          `db:"entry_id"`
	TransactionNumber string          `db:"transaction_number"`
	MemberID          string          `db:"member_id"`
	Direction         string          `db:"direction"`
	Category          string          `db:"category"`
	AmountBalance     decimal.Decimal `db:"amount_balance"`
	AmountPoints      int64           `db:"amount_points"`
	BalanceBefore     decimal.Decimal `db:"balance_before"`
	BalanceAfter      decimal.Decimal `db:"balance_after"`
	PointsBefore      int64           `db:"points_before"`
	PointsAfter       int64           `db:"points_after"`
	DepositID         *string         `db:"deposit_id"`
	TreasuryID        *string         `db:"treasury_id"`
	AdminID           string          `db:"admin_id"`
	Note              string          `db:"note"`
	TransactionDate   time.Time       `db:"transaction_date"`
	TransactionTime   time.Time       `db:"transaction_time"`
	AuditFields
}
