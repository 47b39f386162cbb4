package domain

import (
	"github.com/shopspring/decimal"
)

// MemberNumberPrefix is the daily-sequence prefix used for member numbers.
const MemberNumberPrefix = "MBR"

// Member is the account record holding a member's running aggregates.
// Balance, Points and TotalWeightKg are mutated exclusively by the
// deposit/withdrawal/point-exchange/treasury processors, always through a
// MemberDelta applied under a row lock.
type Member struct {
	MemberID      string          `json:"memberID"`
	UserID        string          `json:"userID"`
	MemberNumber  string          `json:"memberNumber"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	Points        int64           `json:"points"`
	TotalWeightKg decimal.Decimal `json:"totalWeightKg"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// MemberDelta is the signed change a single operation applies to a member's
// aggregates. Corrections are expressed as the difference between the new and
// old effect of a transaction, never as absolute values.
type MemberDelta struct {
	Balance  decimal.Decimal
	Points   int64
	WeightKg decimal.Decimal
}

// Neg returns the exact reversal of the delta.
func (d MemberDelta) Neg() MemberDelta {
	return MemberDelta{
		Balance:  d.Balance.Neg(),
		Points:   -d.Points,
		WeightKg: d.WeightKg.Neg(),
	}
}

// Sub returns the delta that moves a member from the effect of old to the
// effect of d.
func (d MemberDelta) Sub(old MemberDelta) MemberDelta {
	return MemberDelta{
		Balance:  d.Balance.Sub(old.Balance),
		Points:   d.Points - old.Points,
		WeightKg: d.WeightKg.Sub(old.WeightKg),
	}
}

// IsZero reports whether the delta has no effect.
func (d MemberDelta) IsZero() bool {
	return d.Balance.IsZero() && d.Points == 0 && d.WeightKg.IsZero()
}

// Apply mutates the member's aggregates by the delta.
func (m *Member) Apply(d MemberDelta) {
	m.Balance = m.Balance.Add(d.Balance)
	m.Points += d.Points
	m.TotalWeightKg = m.TotalWeightKg.Add(d.WeightKg)
}

// CanAbsorb reports whether applying the delta keeps every aggregate
// non-negative. Non-negativity is enforced here, at the processor level,
// not by the storage layer.
func (m Member) CanAbsorb(d MemberDelta) bool {
	if m.Balance.Add(d.Balance).IsNegative() {
		return false
	}
	if m.Points+d.Points < 0 {
		return false
	}
	if m.TotalWeightKg.Add(d.WeightKg).IsNegative() {
		return false
	}
	return true
}
