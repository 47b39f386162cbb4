package services

import (
	"context"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
)

// PointExchangeSvcFacade defines the point exchange processor's operations.
// Exchanges are final once posted; only creation exists.
type PointExchangeSvcFacade interface {
	// ExchangePoints converts member points into balance at the configured
	// rate and posts the ledger entry atomically.
	ExchangePoints(ctx context.Context, req dto.ExchangePointsRequest, adminID string) (*dto.ExchangeReceipt, error)
}
