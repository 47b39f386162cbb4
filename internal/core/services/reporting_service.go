package services

import (
	"context"
	"time"

	portsrepo "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/repositories"
	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
)

// reportingService is the read-side query surface over members and the ledger.
type reportingService struct {
	ledgerRepo portsrepo.LedgerReader
	memberRepo portsrepo.MemberReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(ledgerRepo portsrepo.LedgerReader, memberRepo portsrepo.MemberReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		ledgerRepo: ledgerRepo,
		memberRepo: memberRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetMemberBalance(ctx context.Context, memberID string) (*dto.MemberBalanceResponse, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return &dto.MemberBalanceResponse{
		MemberID:      member.MemberID,
		MemberNumber:  member.MemberNumber,
		Name:          member.Name,
		Balance:       member.Balance,
		Points:        member.Points,
		TotalWeightKg: member.TotalWeightKg,
	}, nil
}

func (s *reportingService) ListMemberLedger(ctx context.Context, memberID string, params dto.ListLedgerParams) (*dto.LedgerHistoryResponse, error) {
	if _, err := s.memberRepo.FindMemberByID(ctx, memberID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	entries, nextToken, err := s.ledgerRepo.ListEntriesByMember(ctx, memberID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.LedgerHistoryResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

func (s *reportingService) SummarizeLedger(ctx context.Context, from time.Time, to time.Time) (*dto.LedgerSummaryResponse, error) {
	summaries, err := s.ledgerRepo.SummarizeByCategory(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.LedgerSummaryResponse{
		From: from,
		To:   to,
		Rows: dto.ToLedgerSummaryRows(summaries),
	}, nil
}
