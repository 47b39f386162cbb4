package mapping

import (
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/models"
)

// ToModelWasteCategory converts a domain WasteCategory to a model WasteCategory
func ToModelWasteCategory(d domain.WasteCategory) models.WasteCategory {
	return models.WasteCategory{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		PricePerKg:  d.PricePerKg,
		PointsPerKg: d.PointsPerKg,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWasteCategory converts a model WasteCategory to a domain WasteCategory
func ToDomainWasteCategory(m models.WasteCategory) domain.WasteCategory {
	return domain.WasteCategory{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		PricePerKg:  m.PricePerKg,
		PointsPerKg: m.PointsPerKg,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
