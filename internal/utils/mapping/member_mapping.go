package mapping

import (
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/models"
)

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:      d.MemberID,
		UserID:        d.UserID,
		MemberNumber:  d.MemberNumber,
		Name:          d.Name,
		Balance:       d.Balance,
		Points:        d.Points,
		TotalWeightKg: d.TotalWeightKg,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:      m.MemberID,
		UserID:        m.UserID,
		MemberNumber:  m.MemberNumber,
		Name:          m.Name,
		Balance:       m.Balance,
		Points:        m.Points,
		TotalWeightKg: m.TotalWeightKg,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
