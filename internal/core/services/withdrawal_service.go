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
	minWithdrawalAmount = decimal.NewFromInt(1_000)
	maxWithdrawalAmount = decimal.NewFromInt(50_000_000)
)

// withdrawalService pays out member balance in cash. Every withdrawal is a
// protected treasury record plus a ledger entry, posted atomically.
type withdrawalService struct {
	treasuryRepo portsrepo.TreasuryRepositoryFacade
	memberRepo   portsrepo.MemberReader
}

// NewWithdrawalService creates a new WithdrawalService.
func NewWithdrawalService(treasuryRepo portsrepo.TreasuryRepositoryFacade, memberRepo portsrepo.MemberReader) portssvc.WithdrawalSvcFacade {
	return &withdrawalService{
		treasuryRepo: treasuryRepo,
		memberRepo:   memberRepo,
	}
}

var _ portssvc.WithdrawalSvcFacade = (*withdrawalService)(nil)

func validateWithdrawalAmount(amount decimal.Decimal) error {
	if amount.LessThan(minWithdrawalAmount) {
		return apperrors.NewFieldValidationError("amount", "minimum withdrawal is 1000")
	}
	if amount.GreaterThan(maxWithdrawalAmount) {
		return apperrors.NewFieldValidationError("amount", "maximum withdrawal is 50000000")
	}
	return nil
}

// PostWithdrawal debits the member's balance and records the cash leaving the
// treasury, in one atomic unit.
func (s *withdrawalService) PostWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest, adminID string) (*dto.WithdrawalReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateWithdrawalAmount(req.Amount); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return nil, apperrors.NewFieldValidationError("memberID", "member is inactive")
	}
	if member.Balance.LessThan(req.Amount) {
		return nil, apperrors.NewFieldValidationError("amount", "insufficient balance")
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     adminID,
		LastUpdatedAt: now,
		LastUpdatedBy: adminID,
	}
	memberID := member.MemberID
	note := req.Note
	if note == "" {
		note = fmt.Sprintf("Balance withdrawal by %s", member.Name)
	}
	treasury := domain.Treasury{
		TreasuryID:    uuid.NewString(),
		Direction:     domain.DirectionOut,
		Category:      domain.TreasuryMemberWithdrawal,
		Amount:        req.Amount,
		MemberID:      &memberID,
		Note:          note,
		TransactionAt: now,
		AuditFields:   audit,
	}
	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		MemberID:      memberID,
		Direction:     domain.DirectionOut,
		Category:      domain.EntryWithdrawal,
		AmountBalance: req.Amount,
		AmountPoints:  0,
		Source:        domain.TreasurySource(treasury.TreasuryID),
		AdminID:       adminID,
		Note:          note,
		TransactionAt: now,
		AuditFields:   audit,
	}
	delta := domain.MemberDelta{Balance: req.Amount.Neg()}

	savedTreasury, savedEntry, err := s.treasuryRepo.SaveTreasury(ctx, treasury, &entry, delta)
	if err != nil {
		logger.Error("Failed to post withdrawal", slog.String("error", err.Error()), slog.String("member_id", memberID))
		return nil, err
	}

	logger.Info("Withdrawal posted",
		slog.String("transaction_number", savedEntry.TransactionNumber),
		slog.String("treasury_number", savedTreasury.TreasuryNumber),
		slog.String("member_id", memberID),
	)
	return &dto.WithdrawalReceipt{
		TransactionNumber: savedEntry.TransactionNumber,
		TreasuryNumber:    savedTreasury.TreasuryNumber,
		TreasuryID:        savedTreasury.TreasuryID,
		MemberName:        member.Name,
		Amount:            savedTreasury.Amount,
		RemainingBalance:  savedEntry.BalanceAfter,
	}, nil
}

// UpdateWithdrawal corrects a posted withdrawal's amount. The new amount is
// validated against the balance the member would have if the original
// withdrawal were first undone.
func (s *withdrawalService) UpdateWithdrawal(ctx context.Context, treasuryID string, req dto.UpdateWithdrawalRequest, adminID string) (*dto.WithdrawalReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateWithdrawalAmount(req.Amount); err != nil {
		return nil, err
	}

	treasury, err := s.treasuryRepo.FindTreasuryByID(ctx, treasuryID)
	if err != nil {
		return nil, err
	}
	if treasury.Category != domain.TreasuryMemberWithdrawal || treasury.MemberID == nil {
		return nil, fmt.Errorf("%w: treasury record %s is not a withdrawal", apperrors.ErrNotFound, treasuryID)
	}

	member, err := s.memberRepo.FindMemberByID(ctx, *treasury.MemberID)
	if err != nil {
		return nil, err
	}
	available := member.Balance.Add(treasury.Amount)
	if available.LessThan(req.Amount) {
		return nil, apperrors.NewFieldValidationError("amount", "insufficient balance")
	}

	delta := domain.MemberDelta{Balance: treasury.Amount.Sub(req.Amount)}
	treasury.Amount = req.Amount
	if req.Note != nil {
		treasury.Note = *req.Note
	}
	treasury.LastUpdatedAt = time.Now()
	treasury.LastUpdatedBy = adminID

	updated, entry, err := s.treasuryRepo.UpdateTreasury(ctx, *treasury, delta)
	if err != nil {
		logger.Error("Failed to correct withdrawal", slog.String("error", err.Error()), slog.String("treasury_id", treasuryID))
		return nil, err
	}

	logger.Info("Withdrawal corrected", slog.String("treasury_id", treasuryID), slog.String("member_id", member.MemberID))
	return &dto.WithdrawalReceipt{
		TransactionNumber: entry.TransactionNumber,
		TreasuryNumber:    updated.TreasuryNumber,
		TreasuryID:        updated.TreasuryID,
		MemberName:        member.Name,
		Amount:            updated.Amount,
		RemainingBalance:  entry.BalanceAfter,
	}, nil
}

// DeleteWithdrawal reverses a posted withdrawal, returning the cash to the
// member's balance.
func (s *withdrawalService) DeleteWithdrawal(ctx context.Context, treasuryID string, adminID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	treasury, err := s.treasuryRepo.FindTreasuryByID(ctx, treasuryID)
	if err != nil {
		return err
	}
	if treasury.Category != domain.TreasuryMemberWithdrawal || treasury.MemberID == nil {
		return fmt.Errorf("%w: treasury record %s is not a withdrawal", apperrors.ErrNotFound, treasuryID)
	}

	delta := domain.MemberDelta{Balance: treasury.Amount}
	treasury.LastUpdatedAt = time.Now()
	treasury.LastUpdatedBy = adminID

	if err := s.treasuryRepo.DeleteTreasury(ctx, *treasury, delta); err != nil {
		logger.Error("Failed to delete withdrawal", slog.String("error", err.Error()), slog.String("treasury_id", treasuryID))
		return err
	}

	logger.Info("Withdrawal deleted", slog.String("treasury_id", treasuryID), slog.String("member_id", *treasury.MemberID))
	return nil
}
