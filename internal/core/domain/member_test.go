package domain_test

import (
	"testing"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMemberDelta_Neg(t *testing.T) {
	d := domain.MemberDelta{
		Balance:  decimal.NewFromInt(15000),
		Points:   15,
		WeightKg: decimal.NewFromInt(5),
	}

	n := d.Neg()
	assert.True(t, n.Balance.Equal(decimal.NewFromInt(-15000)))
	assert.Equal(t, int64(-15), n.Points)
	assert.True(t, n.WeightKg.Equal(decimal.NewFromInt(-5)))

	// Applying a delta and its reversal cancels exactly.
	assert.True(t, d.Sub(d).IsZero())
}

func TestMemberDelta_SubIsCorrectionDelta(t *testing.T) {
	old := domain.MemberDelta{
		Balance:  decimal.NewFromInt(15000),
		Points:   15,
		WeightKg: decimal.NewFromInt(5),
	}
	updated := domain.MemberDelta{
		Balance:  decimal.NewFromInt(9000),
		Points:   9,
		WeightKg: decimal.NewFromInt(3),
	}

	delta := updated.Sub(old)
	assert.True(t, delta.Balance.Equal(decimal.NewFromInt(-6000)))
	assert.Equal(t, int64(-6), delta.Points)
	assert.True(t, delta.WeightKg.Equal(decimal.NewFromInt(-2)))
}

func TestMember_Apply(t *testing.T) {
	m := domain.Member{
		Balance:       decimal.NewFromInt(10000),
		Points:        15,
		TotalWeightKg: decimal.NewFromInt(5),
	}

	m.Apply(domain.MemberDelta{
		Balance:  decimal.NewFromInt(1000),
		Points:   -10,
		WeightKg: decimal.Zero,
	})

	assert.True(t, m.Balance.Equal(decimal.NewFromInt(11000)))
	assert.Equal(t, int64(5), m.Points)
	assert.True(t, m.TotalWeightKg.Equal(decimal.NewFromInt(5)))
}

func TestMember_CanAbsorb(t *testing.T) {
	m := domain.Member{
		Balance:       decimal.NewFromInt(5000),
		Points:        10,
		TotalWeightKg: decimal.NewFromInt(3),
	}

	tests := []struct {
		name  string
		delta domain.MemberDelta
		want  bool
	}{
		{
			name:  "zero delta",
			delta: domain.MemberDelta{},
			want:  true,
		},
		{
			name:  "debit down to exactly zero",
			delta: domain.MemberDelta{Balance: decimal.NewFromInt(-5000)},
			want:  true,
		},
		{
			name:  "balance would go negative",
			delta: domain.MemberDelta{Balance: decimal.NewFromInt(-5001)},
			want:  false,
		},
		{
			name:  "points would go negative",
			delta: domain.MemberDelta{Points: -11},
			want:  false,
		},
		{
			name:  "weight would go negative",
			delta: domain.MemberDelta{WeightKg: decimal.NewFromInt(-4)},
			want:  false,
		},
		{
			name: "mixed credit and debit within range",
			delta: domain.MemberDelta{
				Balance:  decimal.NewFromInt(1000),
				Points:   -10,
				WeightKg: decimal.NewFromInt(-3),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.CanAbsorb(tt.delta))
		})
	}
}

func TestPriceDeposit_Truncation(t *testing.T) {
	tests := []struct {
		name       string
		weight     string
		price      int64
		pointsRate int64
		wantTotal  string
		wantPoints int64
	}{
		{"whole weight", "5", 3000, 3, "15000", 15},
		{"fractional points truncate down", "2.5", 3000, 3, "7500", 7},
		{"sub-point weight earns nothing", "0.2", 3000, 3, "600", 0},
		{"fractional price kept exact", "1.5", 2333, 2, "3499.5", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, points := domain.PriceDeposit(
				decimal.RequireFromString(tt.weight),
				decimal.NewFromInt(tt.price),
				decimal.NewFromInt(tt.pointsRate),
			)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.wantTotal)), "total: got %s want %s", total, tt.wantTotal)
			assert.Equal(t, tt.wantPoints, points)
		})
	}
}

func TestDeposit_Delta(t *testing.T) {
	d := domain.Deposit{
		WeightKg:     decimal.NewFromInt(5),
		TotalPrice:   decimal.NewFromInt(15000),
		PointsEarned: 15,
	}

	delta := d.Delta()
	assert.True(t, delta.Balance.Equal(decimal.NewFromInt(15000)))
	assert.Equal(t, int64(15), delta.Points)
	assert.True(t, delta.WeightKg.Equal(decimal.NewFromInt(5)))
}
