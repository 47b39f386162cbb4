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

var (
	minTreasuryAmount = decimal.NewFromInt(1_000)
	maxTreasuryAmount = decimal.NewFromInt(100_000_000)
)

// treasuryService records organization-level money movements. Withdrawal
// records are owned by the withdrawal processor; this surface refuses to
// create, edit or delete them.
type treasuryService struct {
	treasuryRepo portsrepo.TreasuryRepositoryFacade
	memberRepo   portsrepo.MemberReader
}

// NewTreasuryService creates a new TreasuryService.
func NewTreasuryService(treasuryRepo portsrepo.TreasuryRepositoryFacade, memberRepo portsrepo.MemberReader) portssvc.TreasurySvcFacade {
	return &treasuryService{
		treasuryRepo: treasuryRepo,
		memberRepo:   memberRepo,
	}
}

var _ portssvc.TreasurySvcFacade = (*treasuryService)(nil)

func validateTreasuryAmount(amount decimal.Decimal) error {
	if amount.LessThan(minTreasuryAmount) {
		return apperrors.NewFieldValidationError("amount", "minimum amount is 1000")
	}
	if amount.GreaterThan(maxTreasuryAmount) {
		return apperrors.NewFieldValidationError("amount", "maximum amount is 100000000")
	}
	return nil
}

// PostTreasury records a money movement. Operational-need records tagged with
// a member also adjust that member's balance and write a ledger entry, in the
// same atomic unit as the treasury insert.
func (s *treasuryService) PostTreasury(ctx context.Context, req dto.CreateTreasuryRequest, adminID string) (*dto.TreasuryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateTreasuryAmount(req.Amount); err != nil {
		return nil, err
	}
	category := domain.TreasuryCategory(req.Category)
	direction := domain.EntryDirection(req.Direction)
	if category == domain.TreasuryMemberWithdrawal {
		return nil, apperrors.NewFieldValidationError("category", "withdrawal records are created through the withdrawal surface")
	}
	if req.MemberID != nil && category != domain.TreasuryOperationalNeed {
		return nil, apperrors.NewFieldValidationError("memberID", "only operational-need records can reference a member")
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     adminID,
		LastUpdatedAt: now,
		LastUpdatedBy: adminID,
	}
	treasury := domain.Treasury{
		TreasuryID:    uuid.NewString(),
		Direction:     direction,
		Category:      category,
		Amount:        req.Amount,
		MemberID:      req.MemberID,
		Note:          req.Note,
		TransactionAt: now,
		AuditFields:   audit,
	}

	var entry *domain.LedgerEntry
	var delta domain.MemberDelta
	if treasury.TouchesMember() {
		member, err := s.memberRepo.FindMemberByID(ctx, *req.MemberID)
		if err != nil {
			return nil, err
		}
		if !member.IsActive {
			return nil, apperrors.NewFieldValidationError("memberID", "member is inactive")
		}
		if direction == domain.DirectionOut && member.Balance.LessThan(req.Amount) {
			return nil, apperrors.NewFieldValidationError("amount", "insufficient balance")
		}

		delta = domain.MemberDelta{Balance: treasury.SignedAmount()}
		entry = &domain.LedgerEntry{
			EntryID:       uuid.NewString(),
			MemberID:      member.MemberID,
			Direction:     direction,
			Category:      domain.EntryOperationalAdjustment,
			AmountBalance: req.Amount,
			AmountPoints:  0,
			Source:        domain.TreasurySource(treasury.TreasuryID),
			AdminID:       adminID,
			Note:          req.Note,
			TransactionAt: now,
			AuditFields:   audit,
		}
	}

	saved, _, err := s.treasuryRepo.SaveTreasury(ctx, treasury, entry, delta)
	if err != nil {
		logger.Error("Failed to post treasury record", slog.String("error", err.Error()), slog.String("category", req.Category))
		return nil, err
	}

	logger.Info("Treasury record posted",
		slog.String("treasury_number", saved.TreasuryNumber),
		slog.String("category", req.Category),
		slog.String("direction", req.Direction),
	)
	resp := dto.ToTreasuryResponse(saved)
	return &resp, nil
}

// UpdateTreasury corrects a record's amount and note.
func (s *treasuryService) UpdateTreasury(ctx context.Context, treasuryID string, req dto.UpdateTreasuryRequest, adminID string) (*dto.TreasuryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateTreasuryAmount(req.Amount); err != nil {
		return nil, err
	}

	treasury, err := s.treasuryRepo.FindTreasuryByID(ctx, treasuryID)
	if err != nil {
		return nil, err
	}
	if treasury.Protected() {
		return nil, fmt.Errorf("%w: withdrawal records are corrected through the withdrawal surface", apperrors.ErrForbidden)
	}

	var delta domain.MemberDelta
	if treasury.TouchesMember() {
		oldSigned := treasury.SignedAmount()
		newSigned := req.Amount
		if treasury.Direction == domain.DirectionOut {
			newSigned = newSigned.Neg()
		}
		delta = domain.MemberDelta{Balance: newSigned.Sub(oldSigned)}

		member, err := s.memberRepo.FindMemberByID(ctx, *treasury.MemberID)
		if err != nil {
			return nil, err
		}
		if member.Balance.Add(delta.Balance).IsNegative() {
			return nil, apperrors.NewFieldValidationError("amount", "insufficient balance")
		}
	}

	treasury.Amount = req.Amount
	if req.Note != nil {
		treasury.Note = *req.Note
	}
	treasury.LastUpdatedAt = time.Now()
	treasury.LastUpdatedBy = adminID

	updated, _, err := s.treasuryRepo.UpdateTreasury(ctx, *treasury, delta)
	if err != nil {
		logger.Error("Failed to correct treasury record", slog.String("error", err.Error()), slog.String("treasury_id", treasuryID))
		return nil, err
	}

	logger.Info("Treasury record corrected", slog.String("treasury_id", treasuryID))
	resp := dto.ToTreasuryResponse(updated)
	return &resp, nil
}

// DeleteTreasury reverses and removes a record.
func (s *treasuryService) DeleteTreasury(ctx context.Context, treasuryID string, adminID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	treasury, err := s.treasuryRepo.FindTreasuryByID(ctx, treasuryID)
	if err != nil {
		return err
	}
	if treasury.Protected() {
		return fmt.Errorf("%w: withdrawal records are deleted through the withdrawal surface", apperrors.ErrForbidden)
	}

	var delta domain.MemberDelta
	if treasury.TouchesMember() {
		delta = domain.MemberDelta{Balance: treasury.SignedAmount().Neg()}
	}
	treasury.LastUpdatedAt = time.Now()
	treasury.LastUpdatedBy = adminID

	if err := s.treasuryRepo.DeleteTreasury(ctx, *treasury, delta); err != nil {
		logger.Error("Failed to delete treasury record", slog.String("error", err.Error()), slog.String("treasury_id", treasuryID))
		return err
	}

	logger.Info("Treasury record deleted", slog.String("treasury_id", treasuryID))
	return nil
}

func (s *treasuryService) GetTreasuryByID(ctx context.Context, treasuryID string) (*dto.TreasuryResponse, error) {
	treasury, err := s.treasuryRepo.FindTreasuryByID(ctx, treasuryID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToTreasuryResponse(treasury)
	return &resp, nil
}

func (s *treasuryService) ListTreasuries(ctx context.Context, from time.Time, to time.Time, limit int, offset int) ([]dto.TreasuryResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	treasuries, err := s.treasuryRepo.ListTreasuries(ctx, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.ToTreasuryResponses(treasuries), nil
}
