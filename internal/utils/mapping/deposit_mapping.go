package mapping

import (
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/models"
)

// ToModelDeposit converts a domain Deposit to a model Deposit
func ToModelDeposit(d domain.Deposit) models.Deposit {
	return models.Deposit{
		DepositID:     d.DepositID,
		DepositNumber: d.DepositNumber,
		MemberID:      d.MemberID,
		CategoryID:    d.CategoryID,
		WeightKg:      d.WeightKg,
		PricePerKg:    d.PricePerKg,
		PointsPerKg:   d.PointsPerKg,
		TotalPrice:    d.TotalPrice,
		PointsEarned:  d.PointsEarned,
		Note:          d.Note,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeposit converts a model Deposit to a domain Deposit
func ToDomainDeposit(m models.Deposit) domain.Deposit {
	return domain.Deposit{
		DepositID:     m.DepositID,
		DepositNumber: m.DepositNumber,
		MemberID:      m.MemberID,
		CategoryID:    m.CategoryID,
		WeightKg:      m.WeightKg,
		PricePerKg:    m.PricePerKg,
		PointsPerKg:   m.PointsPerKg,
		TotalPrice:    m.TotalPrice,
		PointsEarned:  m.PointsEarned,
		Note:          m.Note,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
