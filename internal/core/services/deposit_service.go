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
	"github.com/shopspring/decimal"
)

// maxDepositWeightKg caps a single weighing at the scale's display range.
var maxDepositWeightKg = decimal.RequireFromString("9999.99")

// depositService prices weighed waste submissions and drives the deposit
// posting, correction and reversal units.
type depositService struct {
	depositRepo  portsrepo.DepositRepositoryFacade
	memberRepo   portsrepo.MemberReader
	categoryRepo portsrepo.CategoryReader
}

// NewDepositService creates a new DepositService.
func NewDepositService(depositRepo portsrepo.DepositRepositoryFacade, memberRepo portsrepo.MemberReader, categoryRepo portsrepo.CategoryReader) portssvc.DepositSvcFacade {
	return &depositService{
		depositRepo:  depositRepo,
		memberRepo:   memberRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.DepositSvcFacade = (*depositService)(nil)

func validateWeight(weightKg decimal.Decimal) error {
	if weightKg.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewFieldValidationError("weightKg", "must be greater than zero")
	}
	if weightKg.GreaterThan(maxDepositWeightKg) {
		return apperrors.NewFieldValidationError("weightKg", "must not exceed 9999.99 kg")
	}
	return nil
}

// PostDeposit prices the submission from the category's current rates,
// freezes those rates into the deposit, and posts it atomically against the
// member.
func (s *depositService) PostDeposit(ctx context.Context, req dto.CreateDepositRequest, adminID string) (*dto.DepositReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateWeight(req.WeightKg); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return nil, apperrors.NewFieldValidationError("memberID", "member is inactive")
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, apperrors.NewFieldValidationError("categoryID", "category is inactive")
	}

	totalPrice, pointsEarned := domain.PriceDeposit(req.WeightKg, category.PricePerKg, category.PointsPerKg)

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     adminID,
		LastUpdatedAt: now,
		LastUpdatedBy: adminID,
	}
	deposit := domain.Deposit{
		DepositID:    uuid.NewString(),
		MemberID:     member.MemberID,
		CategoryID:   category.CategoryID,
		WeightKg:     req.WeightKg,
		PricePerKg:   category.PricePerKg,
		PointsPerKg:  category.PointsPerKg,
		TotalPrice:   totalPrice,
		PointsEarned: pointsEarned,
		Note:         req.Note,
		AuditFields:  audit,
	}

	note := req.Note
	if note == "" {
		note = fmt.Sprintf("Waste deposit: %s, %s kg", category.Name, req.WeightKg.String())
	}
	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		MemberID:      member.MemberID,
		Direction:     domain.DirectionIn,
		Category:      domain.EntryDeposit,
		AmountBalance: totalPrice,
		AmountPoints:  pointsEarned,
		Source:        domain.DepositSource(deposit.DepositID),
		AdminID:       adminID,
		Note:          note,
		TransactionAt: now,
		AuditFields:   audit,
	}

	savedDeposit, savedEntry, err := s.depositRepo.SaveDeposit(ctx, deposit, entry)
	if err != nil {
		logger.Error("Failed to post deposit", slog.String("error", err.Error()), slog.String("member_id", member.MemberID))
		return nil, err
	}

	logger.Info("Deposit posted",
		slog.String("deposit_number", savedDeposit.DepositNumber),
		slog.String("transaction_number", savedEntry.TransactionNumber),
		slog.String("member_id", member.MemberID),
	)
	return &dto.DepositReceipt{
		DepositID:     savedDeposit.DepositID,
		DepositNumber: savedDeposit.DepositNumber,
		CategoryName:  category.Name,
		WeightKg:      savedDeposit.WeightKg,
		TotalPrice:    savedDeposit.TotalPrice,
		PointsEarned:  savedDeposit.PointsEarned,
	}, nil
}

// UpdateDeposit corrects a posted deposit's weight. Value and points are
// re-derived from the rates frozen at post time, and the member absorbs the
// difference between the new effect and the old one.
func (s *depositService) UpdateDeposit(ctx context.Context, depositID string, req dto.UpdateDepositRequest, adminID string) (*dto.DepositResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateWeight(req.WeightKg); err != nil {
		return nil, err
	}

	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return nil, err
	}

	oldDelta := deposit.Delta()

	deposit.WeightKg = req.WeightKg
	deposit.TotalPrice, deposit.PointsEarned = domain.PriceDeposit(req.WeightKg, deposit.PricePerKg, deposit.PointsPerKg)
	if req.Note != nil {
		deposit.Note = *req.Note
	}
	deposit.LastUpdatedAt = time.Now()
	deposit.LastUpdatedBy = adminID

	delta := deposit.Delta().Sub(oldDelta)

	updated, _, err := s.depositRepo.UpdateDeposit(ctx, *deposit, delta)
	if err != nil {
		logger.Error("Failed to correct deposit", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		return nil, err
	}

	logger.Info("Deposit corrected", slog.String("deposit_id", depositID), slog.String("member_id", deposit.MemberID))
	resp := dto.ToDepositResponse(updated)
	return &resp, nil
}

// DeleteDeposit reverses and removes a posted deposit.
func (s *depositService) DeleteDeposit(ctx context.Context, depositID string, adminID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return err
	}
	deposit.LastUpdatedAt = time.Now()
	deposit.LastUpdatedBy = adminID

	if err := s.depositRepo.DeleteDeposit(ctx, *deposit); err != nil {
		logger.Error("Failed to delete deposit", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		return err
	}

	logger.Info("Deposit deleted", slog.String("deposit_id", depositID), slog.String("member_id", deposit.MemberID))
	return nil
}

func (s *depositService) GetDepositByID(ctx context.Context, depositID string) (*dto.DepositResponse, error) {
	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToDepositResponse(deposit)
	return &resp, nil
}

func (s *depositService) ListDepositsByMember(ctx context.Context, memberID string, limit int, offset int) ([]dto.DepositResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	deposits, err := s.depositRepo.ListDepositsByMember(ctx, memberID, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.ToDepositResponses(deposits), nil
}
