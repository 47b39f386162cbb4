package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	portsrepo "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/repositories"
	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/middleware"
	"github.com/shopspring/decimal"
)

// memberService provides member onboarding and profile operations. The
// aggregate fields are owned by the posting processors and never change here.
type memberService struct {
	memberRepo portsrepo.MemberRepositoryFacade
}

// NewMemberService creates a new MemberService.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, adminID string) (*dto.MemberResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	member := domain.Member{
		MemberID:      uuid.NewString(),
		UserID:        req.UserID,
		Name:          req.Name,
		Balance:       decimal.Zero,
		Points:        0,
		TotalWeightKg: decimal.Zero,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}

	saved, err := s.memberRepo.SaveMember(ctx, member)
	if err != nil {
		logger.Error("Failed to save member", slog.String("error", err.Error()), slog.String("user_id", req.UserID))
		return nil, err
	}

	logger.Info("Member created", slog.String("member_id", saved.MemberID), slog.String("member_number", saved.MemberNumber))
	resp := dto.ToMemberResponse(saved)
	return &resp, nil
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*dto.MemberResponse, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToMemberResponse(member)
	return &resp, nil
}

func (s *memberService) ListMembers(ctx context.Context, limit int, offset int) ([]dto.MemberResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	members, err := s.memberRepo.ListMembers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.ToMemberResponses(members), nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, adminID string) (*dto.MemberResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = adminID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		logger.Error("Failed to update member", slog.String("error", err.Error()), slog.String("member_id", memberID))
		return nil, err
	}

	resp := dto.ToMemberResponse(member)
	return &resp, nil
}

func (s *memberService) DeactivateMember(ctx context.Context, memberID string, adminID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.memberRepo.DeactivateMember(ctx, memberID, adminID, time.Now()); err != nil {
		logger.Error("Failed to deactivate member", slog.String("error", err.Error()), slog.String("member_id", memberID))
		return err
	}
	logger.Info("Member deactivated", slog.String("member_id", memberID))
	return nil
}
