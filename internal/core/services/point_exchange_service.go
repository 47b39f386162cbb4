package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/apperrors"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	portsrepo "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/repositories"
	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/middleware"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/pkg/config"
	"github.com/shopspring/decimal"
)

// pointExchangeService converts member points into balance at a configured
// rate. Exchanges are final: there is no correction or reversal surface.
type pointExchangeService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
	memberRepo portsrepo.MemberReader

	rate      int64
	unitValue decimal.Decimal
	minimum   int64
}

// NewPointExchangeService creates a new PointExchangeService from the
// configured exchange terms.
func NewPointExchangeService(ledgerRepo portsrepo.LedgerRepositoryFacade, memberRepo portsrepo.MemberReader, cfg *config.Config) portssvc.PointExchangeSvcFacade {
	return &pointExchangeService{
		ledgerRepo: ledgerRepo,
		memberRepo: memberRepo,
		rate:       cfg.PointExchangeRate,
		unitValue:  decimal.NewFromInt(cfg.PointUnitValue),
		minimum:    cfg.PointExchangeMinimum,
	}
}

var _ portssvc.PointExchangeSvcFacade = (*pointExchangeService)(nil)

// ExchangePoints validates the requested points against the exchange terms
// and the member's point balance, then posts the conversion atomically.
func (s *pointExchangeService) ExchangePoints(ctx context.Context, req dto.ExchangePointsRequest, adminID string) (*dto.ExchangeReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Points < s.minimum {
		return nil, apperrors.NewFieldValidationError("points", fmt.Sprintf("minimum exchange is %d points", s.minimum))
	}
	if req.Points%s.rate != 0 {
		return nil, apperrors.NewFieldValidationError("points", fmt.Sprintf("points must be a multiple of %d", s.rate))
	}

	member, err := s.memberRepo.FindMemberByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return nil, apperrors.NewFieldValidationError("memberID", "member is inactive")
	}
	if member.Points < req.Points {
		return nil, apperrors.NewFieldValidationError("points", "insufficient points")
	}

	value := decimal.NewFromInt(req.Points / s.rate).Mul(s.unitValue)

	now := time.Now()
	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		MemberID:      member.MemberID,
		Direction:     domain.DirectionIn,
		Category:      domain.EntryPointExchange,
		AmountBalance: value,
		AmountPoints:  req.Points,
		Source:        domain.NoSource(),
		AdminID:       adminID,
		Note:          fmt.Sprintf("Exchanged %d points", req.Points),
		TransactionAt: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}
	delta := domain.MemberDelta{Balance: value, Points: -req.Points}

	saved, err := s.ledgerRepo.SaveEntry(ctx, entry, delta)
	if err != nil {
		logger.Error("Failed to post point exchange", slog.String("error", err.Error()), slog.String("member_id", member.MemberID))
		return nil, err
	}

	logger.Info("Points exchanged",
		slog.String("transaction_number", saved.TransactionNumber),
		slog.String("member_id", member.MemberID),
		slog.Int64("points", req.Points),
	)
	return &dto.ExchangeReceipt{
		TransactionNumber: saved.TransactionNumber,
		PointsExchanged:   req.Points,
		ExchangeValue:     value,
		RemainingPoints:   saved.PointsAfter,
		NewBalance:        saved.BalanceAfter,
		Message:           fmt.Sprintf("Exchanged %d points for %s", req.Points, value.StringFixed(0)),
	}, nil
}
