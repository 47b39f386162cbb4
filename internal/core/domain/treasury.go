package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TreasuryNumberPrefix is the daily-sequence prefix used for treasury numbers.
const TreasuryNumberPrefix = "TRS"

// TreasuryCategory classifies an organization-level money movement.
type TreasuryCategory string

const (
	TreasurySaleToBuyer      TreasuryCategory = "SALE_TO_BUYER"
	TreasuryOperationalNeed  TreasuryCategory = "OPERATIONAL_NEED"
	TreasuryMemberWithdrawal TreasuryCategory = "MEMBER_WITHDRAWAL"
)

// Treasury is one organization-wide money movement. Only operational-need
// records tagged with a member also touch that member's balance and ledger;
// member-withdrawal records are created by the withdrawal processor and are
// protected against direct edits.
type Treasury struct {
	TreasuryID     string           `json:"treasuryID"`
	TreasuryNumber string           `json:"treasuryNumber"`
	Direction      EntryDirection   `json:"direction"`
	Category       TreasuryCategory `json:"category"`
	Amount         decimal.Decimal  `json:"amount"`
	MemberID       *string          `json:"memberID,omitempty"`
	Note           string           `json:"note"`
	TransactionAt  time.Time        `json:"transactionAt"`
	AuditFields
}

// TouchesMember reports whether this record also affects a member's balance.
func (t Treasury) TouchesMember() bool {
	return t.Category == TreasuryOperationalNeed && t.MemberID != nil
}

// SignedAmount is the member-side balance delta of the record.
func (t Treasury) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionOut {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Protected reports whether the record was auto-generated by another
// processor and must not be edited or deleted through the treasury surface.
func (t Treasury) Protected() bool {
	return t.Category == TreasuryMemberWithdrawal
}
