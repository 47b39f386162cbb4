package services

import (
	"context"
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
)

// TreasuryReaderSvc defines read operations for treasury data
type TreasuryReaderSvc interface {
	// GetTreasuryByID retrieves a specific treasury record by its ID.
	GetTreasuryByID(ctx context.Context, treasuryID string) (*dto.TreasuryResponse, error)

	// ListTreasuries retrieves a paginated list of treasury records within a
	// date range.
	ListTreasuries(ctx context.Context, from time.Time, to time.Time, limit int, offset int) ([]dto.TreasuryResponse, error)
}

// TreasuryWriterSvc defines the treasury processor's mutating operations.
type TreasuryWriterSvc interface {
	// PostTreasury records an organization money movement; operational-need
	// records tagged with a member also adjust that member's balance.
	PostTreasury(ctx context.Context, req dto.CreateTreasuryRequest, adminID string) (*dto.TreasuryResponse, error)

	// UpdateTreasury corrects a record's amount and note. Auto-generated
	// records are protected and rejected here.
	UpdateTreasury(ctx context.Context, treasuryID string, req dto.UpdateTreasuryRequest, adminID string) (*dto.TreasuryResponse, error)

	// DeleteTreasury reverses and removes a record. Auto-generated records
	// are protected and rejected here.
	DeleteTreasury(ctx context.Context, treasuryID string, adminID string) error
}

// TreasurySvcFacade combines all treasury service interfaces
type TreasurySvcFacade interface {
	TreasuryReaderSvc
	TreasuryWriterSvc
}
