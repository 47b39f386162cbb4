package services_test

import (
	"context"
	"time"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	portsrepo "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

var (
	_ portsrepo.MemberRepositoryFacade   = (*MockMemberRepository)(nil)
	_ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)
	_ portsrepo.DepositRepositoryFacade  = (*MockDepositRepository)(nil)
	_ portsrepo.TreasuryRepositoryFacade = (*MockTreasuryRepository)(nil)
	_ portsrepo.LedgerRepositoryFacade   = (*MockLedgerRepository)(nil)
)

// MockMemberRepository is a mock for portsrepo.MemberRepositoryFacade.
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) (*domain.Member, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindMemberByNumber(ctx context.Context, memberNumber string) (*domain.Member, error) {
	args := m.Called(ctx, memberNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) DeactivateMember(ctx context.Context, memberID string, adminID string, now time.Time) error {
	args := m.Called(ctx, memberID, adminID, now)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

func (m *MockMemberRepository) FindMemberForUpdate(ctx context.Context, tx pgx.Tx, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, tx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ApplyMemberDeltaInTx(ctx context.Context, tx pgx.Tx, memberID string, delta domain.MemberDelta, adminID string, now time.Time) error {
	args := m.Called(ctx, tx, memberID, delta, adminID, now)
	return args.Error(0)
}

// MockCategoryRepository is a mock for portsrepo.CategoryRepositoryFacade.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.WasteCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WasteCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]domain.WasteCategory, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WasteCategory), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.WasteCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.WasteCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeactivateCategory(ctx context.Context, categoryID string, adminID string, now time.Time) error {
	args := m.Called(ctx, categoryID, adminID, now)
	return args.Error(0)
}

// MockDepositRepository is a mock for portsrepo.DepositRepositoryFacade.
type MockDepositRepository struct {
	mock.Mock
}

func (m *MockDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}

func (m *MockDepositRepository) ListDepositsByMember(ctx context.Context, memberID string, limit int, offset int) ([]domain.Deposit, error) {
	args := m.Called(ctx, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deposit), args.Error(1)
}

func (m *MockDepositRepository) SaveDeposit(ctx context.Context, deposit domain.Deposit, entry domain.LedgerEntry) (*domain.Deposit, *domain.LedgerEntry, error) {
	args := m.Called(ctx, deposit, entry)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Deposit), args.Get(1).(*domain.LedgerEntry), args.Error(2)
}

func (m *MockDepositRepository) UpdateDeposit(ctx context.Context, deposit domain.Deposit, delta domain.MemberDelta) (*domain.Deposit, *domain.LedgerEntry, error) {
	args := m.Called(ctx, deposit, delta)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Deposit), args.Get(1).(*domain.LedgerEntry), args.Error(2)
}

func (m *MockDepositRepository) DeleteDeposit(ctx context.Context, deposit domain.Deposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

// MockTreasuryRepository is a mock for portsrepo.TreasuryRepositoryFacade.
type MockTreasuryRepository struct {
	mock.Mock
}

func (m *MockTreasuryRepository) FindTreasuryByID(ctx context.Context, treasuryID string) (*domain.Treasury, error) {
	args := m.Called(ctx, treasuryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Treasury), args.Error(1)
}

func (m *MockTreasuryRepository) ListTreasuries(ctx context.Context, from time.Time, to time.Time, limit int, offset int) ([]domain.Treasury, error) {
	args := m.Called(ctx, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Treasury), args.Error(1)
}

func (m *MockTreasuryRepository) SaveTreasury(ctx context.Context, treasury domain.Treasury, entry *domain.LedgerEntry, delta domain.MemberDelta) (*domain.Treasury, *domain.LedgerEntry, error) {
	args := m.Called(ctx, treasury, entry, delta)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var outEntry *domain.LedgerEntry
	if args.Get(1) != nil {
		outEntry = args.Get(1).(*domain.LedgerEntry)
	}
	return args.Get(0).(*domain.Treasury), outEntry, args.Error(2)
}

func (m *MockTreasuryRepository) UpdateTreasury(ctx context.Context, treasury domain.Treasury, delta domain.MemberDelta) (*domain.Treasury, *domain.LedgerEntry, error) {
	args := m.Called(ctx, treasury, delta)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var outEntry *domain.LedgerEntry
	if args.Get(1) != nil {
		outEntry = args.Get(1).(*domain.LedgerEntry)
	}
	return args.Get(0).(*domain.Treasury), outEntry, args.Error(2)
}

func (m *MockTreasuryRepository) DeleteTreasury(ctx context.Context, treasury domain.Treasury, delta domain.MemberDelta) error {
	args := m.Called(ctx, treasury, delta)
	return args.Error(0)
}

// MockLedgerRepository is a mock for portsrepo.LedgerRepositoryFacade.
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntryBySource(ctx context.Context, source domain.EntrySource) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByMember(ctx context.Context, memberID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, memberID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.LedgerEntry), token, args.Error(2)
}

func (m *MockLedgerRepository) SummarizeByCategory(ctx context.Context, from time.Time, to time.Time) ([]domain.LedgerSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerSummary), args.Error(1)
}

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry, delta domain.MemberDelta) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
