package mapping

import (
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry,
// flattening the discriminated source link into the two nullable columns.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	m := models.LedgerEntry{
		EntryID:           d.EntryID,
		TransactionNumber: d.TransactionNumber,
		MemberID:          d.MemberID,
		Direction:         string(d.Direction),
		Category:          string(d.Category),
		AmountBalance:     d.AmountBalance,
		AmountPoints:      d.AmountPoints,
		BalanceBefore:     d.BalanceBefore,
		BalanceAfter:      d.BalanceAfter,
		PointsBefore:      d.PointsBefore,
		PointsAfter:       d.PointsAfter,
		AdminID:           d.AdminID,
		Note:              d.Note,
		TransactionDate:   d.TransactionAt,
		TransactionTime:   d.TransactionAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	switch d.Source.Type {
	case domain.SourceDeposit:
		id := d.Source.ID
		m.DepositID = &id
	case domain.SourceTreasury:
		id := d.Source.ID
		m.TreasuryID = &id
	}
	return m
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	source := domain.NoSource()
	switch {
	case m.DepositID != nil:
		source = domain.DepositSource(*m.DepositID)
	case m.TreasuryID != nil:
		source = domain.TreasurySource(*m.TreasuryID)
	}
	return domain.LedgerEntry{
		EntryID:           m.EntryID,
		TransactionNumber: m.TransactionNumber,
		MemberID:          m.MemberID,
		Direction:         domain.EntryDirection(m.Direction),
		Category:          domain.EntryCategory(m.Category),
		AmountBalance:     m.AmountBalance,
		AmountPoints:      m.AmountPoints,
		BalanceBefore:     m.BalanceBefore,
		BalanceAfter:      m.BalanceAfter,
		PointsBefore:      m.PointsBefore,
		PointsAfter:       m.PointsAfter,
		Source:            source,
		AdminID:           m.AdminID,
		Note:              m.Note,
		TransactionAt:     combineDateTime(m.TransactionDate, m.TransactionTime),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
