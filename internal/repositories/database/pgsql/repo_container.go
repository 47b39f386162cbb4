package pgsql

import (
	portsrepo "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	memberRepo := newPgxMemberRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	depositRepo := newPgxDepositRepository(dbPool, memberRepo)
	treasuryRepo := newPgxTreasuryRepository(dbPool, memberRepo)
	ledgerRepo := newPgxLedgerRepository(dbPool, memberRepo)

	return portsrepo.RepositoryProvider{
		MemberRepo:   memberRepo,
		CategoryRepo: categoryRepo,
		DepositRepo:  depositRepo,
		TreasuryRepo: treasuryRepo,
		LedgerRepo:   ledgerRepo,
	}
}
