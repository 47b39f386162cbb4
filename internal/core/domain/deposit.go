package domain

import "github.com/shopspring/decimal"

// DepositNumberPrefix is the daily-sequence prefix used for deposit numbers.
const DepositNumberPrefix = "DPT"

// Deposit records one weighed waste submission. PricePerKg and PointsPerKg
// are frozen copies of the category rates at post time; corrections recompute
// from these stored rates, never from the category's live rates.
type Deposit struct {
	DepositID     string          `json:"depositID"`
	DepositNumber string          `json:"depositNumber"`
	MemberID      string          `json:"memberID"`
	CategoryID    string          `json:"categoryID"`
	WeightKg      decimal.Decimal `json:"weightKg"`
	PricePerKg    decimal.Decimal `json:"pricePerKg"`
	PointsPerKg   decimal.Decimal `json:"pointsPerKg"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	PointsEarned  int64           `json:"pointsEarned"`
	Note          string          `json:"note"`
	AuditFields
}

// PriceDeposit derives the frozen value of a deposit from a weight and the
// rate basis. Points use integer truncation, not rounding.
func PriceDeposit(weightKg, pricePerKg, pointsPerKg decimal.Decimal) (totalPrice decimal.Decimal, pointsEarned int64) {
	totalPrice = weightKg.Mul(pricePerKg)
	pointsEarned = weightKg.Mul(pointsPerKg).Floor().IntPart()
	return totalPrice, pointsEarned
}

// Delta is the effect posting this deposit has on the member's aggregates.
func (d Deposit) Delta() MemberDelta {
	return MemberDelta{
		Balance:  d.TotalPrice,
		Points:   d.PointsEarned,
		WeightKg: d.WeightKg,
	}
}
