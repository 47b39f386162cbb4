package services

import (
	"context"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
)

// DepositReaderSvc defines read operations for deposit data
type DepositReaderSvc interface {
	// GetDepositByID retrieves a specific deposit by its ID.
	GetDepositByID(ctx context.Context, depositID string) (*dto.DepositResponse, error)

	// ListDepositsByMember retrieves a paginated list of a member's deposits.
	ListDepositsByMember(ctx context.Context, memberID string, limit int, offset int) ([]dto.DepositResponse, error)
}

// DepositWriterSvc defines the deposit processor's mutating operations.
type DepositWriterSvc interface {
	// PostDeposit prices a weighed waste submission from the category's
	// current rates and posts it atomically against the member.
	PostDeposit(ctx context.Context, req dto.CreateDepositRequest, adminID string) (*dto.DepositReceipt, error)

	// UpdateDeposit corrects a posted deposit's weight, re-deriving value and
	// points from the frozen rate basis and applying the delta to the member.
	UpdateDeposit(ctx context.Context, depositID string, req dto.UpdateDepositRequest, adminID string) (*dto.DepositResponse, error)

	// DeleteDeposit reverses and removes a posted deposit.
	DeleteDeposit(ctx context.Context, depositID string, adminID string) error
}

// DepositSvcFacade combines all deposit service interfaces
type DepositSvcFacade interface {
	DepositReaderSvc
	DepositWriterSvc
}
