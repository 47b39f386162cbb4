package mapping

import (
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/models"
)

// combineDateTime merges the separate date and time-of-day columns back into
// one timestamp.
func combineDateTime(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(),
		time.UTC,
	)
}

// ToModelTreasury converts a domain Treasury to a model Treasury
func ToModelTreasury(d domain.Treasury) models.Treasury {
	return models.Treasury{
		TreasuryID:      d.TreasuryID,
		TreasuryNumber:  d.TreasuryNumber,
		Direction:       string(d.Direction),
		Category:        string(d.Category),
		Amount:          d.Amount,
		MemberID:        d.MemberID,
		Note:            d.Note,
		TransactionDate: d.TransactionAt,
		TransactionTime: d.TransactionAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTreasury converts a model Treasury to a domain Treasury
func ToDomainTreasury(m models.Treasury) domain.Treasury {
	return domain.Treasury{
		TreasuryID:     m.TreasuryID,
		TreasuryNumber: m.TreasuryNumber,
		Direction:      domain.EntryDirection(m.Direction),
		Category:       domain.TreasuryCategory(m.Category),
		Amount:         m.Amount,
		MemberID:       m.MemberID,
		Note:           m.Note,
		TransactionAt:  combineDateTime(m.TransactionDate, m.TransactionTime),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
