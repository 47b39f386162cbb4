package services

import (
	portsrepo "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/repositories"
	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/pkg/config"
)

// NewServiceProvider wires every service facade onto the repository provider.
func NewServiceProvider(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceProvider {
	return &portssvc.ServiceProvider{
		MemberSvc:        NewMemberService(repos.MemberRepo),
		CategorySvc:      NewCategoryService(repos.CategoryRepo),
		DepositSvc:       NewDepositService(repos.DepositRepo, repos.MemberRepo, repos.CategoryRepo),
		WithdrawalSvc:    NewWithdrawalService(repos.TreasuryRepo, repos.MemberRepo),
		PointExchangeSvc: NewPointExchangeService(repos.LedgerRepo, repos.MemberRepo, cfg),
		TreasurySvc:      NewTreasuryService(repos.TreasuryRepo, repos.MemberRepo),
		ReportingSvc:     NewReportingService(repos.LedgerRepo, repos.MemberRepo),
	}
}
