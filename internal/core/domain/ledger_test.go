package domain_test

import (
	"testing"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerEntry_Effect(t *testing.T) {
	tests := []struct {
		name        string
		entry       domain.LedgerEntry
		wantBalance decimal.Decimal
		wantPoints  int64
	}{
		{
			name: "deposit adds balance and points",
			entry: domain.LedgerEntry{
				Direction:     domain.DirectionIn,
				Category:      domain.EntryDeposit,
				AmountBalance: decimal.NewFromInt(15000),
				AmountPoints:  15,
			},
			wantBalance: decimal.NewFromInt(15000),
			wantPoints:  15,
		},
		{
			name: "withdrawal removes balance only",
			entry: domain.LedgerEntry{
				Direction:     domain.DirectionOut,
				Category:      domain.EntryWithdrawal,
				AmountBalance: decimal.NewFromInt(5000),
				AmountPoints:  0,
			},
			wantBalance: decimal.NewFromInt(-5000),
			wantPoints:  0,
		},
		{
			name: "point exchange adds balance while consuming points",
			entry: domain.LedgerEntry{
				Direction:     domain.DirectionIn,
				Category:      domain.EntryPointExchange,
				AmountBalance: decimal.NewFromInt(1000),
				AmountPoints:  10,
			},
			wantBalance: decimal.NewFromInt(1000),
			wantPoints:  -10,
		},
		{
			name: "operational adjustment out carries no points effect",
			entry: domain.LedgerEntry{
				Direction:     domain.DirectionOut,
				Category:      domain.EntryOperationalAdjustment,
				AmountBalance: decimal.NewFromInt(20000),
				AmountPoints:  0,
			},
			wantBalance: decimal.NewFromInt(-20000),
			wantPoints:  0,
		},
		{
			name: "operational adjustment in adds balance",
			entry: domain.LedgerEntry{
				Direction:     domain.DirectionIn,
				Category:      domain.EntryOperationalAdjustment,
				AmountBalance: decimal.NewFromInt(7500),
			},
			wantBalance: decimal.NewFromInt(7500),
			wantPoints:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, points := tt.entry.Effect()
			assert.True(t, balance.Equal(tt.wantBalance), "balance effect: got %s want %s", balance, tt.wantBalance)
			assert.Equal(t, tt.wantPoints, points)
		})
	}
}

func TestLedgerEntry_SnapshotsReconcileWithEffect(t *testing.T) {
	entry := domain.LedgerEntry{
		Direction:     domain.DirectionIn,
		Category:      domain.EntryPointExchange,
		AmountBalance: decimal.NewFromInt(1000),
		AmountPoints:  10,
		BalanceBefore: decimal.NewFromInt(10000),
		BalanceAfter:  decimal.NewFromInt(11000),
		PointsBefore:  15,
		PointsAfter:   5,
	}

	balance, points := entry.Effect()
	assert.True(t, entry.BalanceBefore.Add(balance).Equal(entry.BalanceAfter))
	assert.Equal(t, entry.PointsBefore+points, entry.PointsAfter)
}

func TestEntrySource_Constructors(t *testing.T) {
	assert.Equal(t, domain.EntrySource{Type: domain.SourceNone}, domain.NoSource())
	assert.Equal(t, domain.EntrySource{Type: domain.SourceDeposit, ID: "d1"}, domain.DepositSource("d1"))
	assert.Equal(t, domain.EntrySource{Type: domain.SourceTreasury, ID: "t1"}, domain.TreasurySource("t1"))
}
