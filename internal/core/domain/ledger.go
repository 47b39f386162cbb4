package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerNumberPrefix is the daily-sequence prefix used for ledger transaction numbers.
const LedgerNumberPrefix = "TRX"

// EntryDirection marks whether an event moved money into or out of a balance.
type EntryDirection string

const (
	DirectionIn  EntryDirection = "IN"
	DirectionOut EntryDirection = "OUT"
)

// EntryCategory classifies the source operation of a ledger entry.
type EntryCategory string

const (
	EntryDeposit               EntryCategory = "DEPOSIT"
	EntryWithdrawal            EntryCategory = "WITHDRAWAL"
	EntryPointExchange         EntryCategory = "POINT_EXCHANGE"
	EntryOperationalAdjustment EntryCategory = "OPERATIONAL_ADJUSTMENT"
)

// EntrySourceType discriminates which record, if any, an entry originates from.
type EntrySourceType string

const (
	SourceNone     EntrySourceType = "NONE"
	SourceDeposit  EntrySourceType = "DEPOSIT"
	SourceTreasury EntrySourceType = "TREASURY"
)

// EntrySource is the discriminated link from a ledger entry back to its
// originating record. Exactly one processor owns any given entry; modelling
// the link this way keeps that ownership a closed set instead of a pair of
// independent nullable foreign keys.
type EntrySource struct {
	Type EntrySourceType `json:"type"`
	ID   string          `json:"id,omitempty"`
}

func NoSource() EntrySource                { return EntrySource{Type: SourceNone} }
func DepositSource(id string) EntrySource  { return EntrySource{Type: SourceDeposit, ID: id} }
func TreasurySource(id string) EntrySource { return EntrySource{Type: SourceTreasury, ID: id} }

// LedgerEntry is one balance-or-points-affecting event for a member, carrying
// before/after snapshots captured at post time. Snapshots are immutable except
// through the correction path, which rewrites the amounts and *_after fields.
type LedgerEntry struct {
	EntryID           string          `json:"entryID"`
	TransactionNumber string          `json:"transactionNumber"`
	MemberID          string          `json:"memberID"`
	Direction         EntryDirection  `json:"direction"`
	Category          EntryCategory   `json:"category"`
	AmountBalance     decimal.Decimal `json:"amountBalance"`
	AmountPoints      int64           `json:"amountPoints"`
	BalanceBefore     decimal.Decimal `json:"balanceBefore"`
	BalanceAfter      decimal.Decimal `json:"balanceAfter"`
	PointsBefore      int64           `json:"pointsBefore"`
	PointsAfter       int64           `json:"pointsAfter"`
	Source            EntrySource     `json:"source"`
	AdminID           string          `json:"adminID"`
	Note              string          `json:"note"`
	TransactionAt     time.Time       `json:"transactionAt"`
	AuditFields
}

// Effect returns the signed change this entry records against the member's
// balance and points. Point exchanges carry direction IN (the balance grows)
// while their points effect is negative.
func (e LedgerEntry) Effect() (balance decimal.Decimal, points int64) {
	balance = e.AmountBalance
	if e.Direction == DirectionOut {
		balance = balance.Neg()
	}
	switch e.Category {
	case EntryDeposit:
		points = e.AmountPoints
	case EntryPointExchange:
		points = -e.AmountPoints
	default:
		points = 0
	}
	return balance, points
}
