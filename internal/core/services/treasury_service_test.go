package services_test

import (
	"context"
	"testing"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/apperrors"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/domain"
	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TreasuryServiceTestSuite struct {
	suite.Suite
	mockTreasuryRepo *MockTreasuryRepository
	mockMemberRepo   *MockMemberRepository
	service          portssvc.TreasurySvcFacade
	ctx              context.Context

	adminID string
	member  domain.Member
}

func (suite *TreasuryServiceTestSuite) SetupTest() {
	suite.mockTreasuryRepo = new(MockTreasuryRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.service = services.NewTreasuryService(suite.mockTreasuryRepo, suite.mockMemberRepo)
	suite.ctx = context.Background()

	suite.adminID = uuid.NewString()
	suite.member = domain.Member{
		MemberID: uuid.NewString(),
		Name:     "Siti Rahma",
		Balance:  decimal.NewFromInt(50000),
		IsActive: true,
	}
}

func (suite *TreasuryServiceTestSuite) TestPostTreasury_SaleToBuyer() {
	req := dto.CreateTreasuryRequest{
		Direction: string(domain.DirectionIn),
		Category:  string(domain.TreasurySaleToBuyer),
		Amount:    decimal.NewFromInt(250000),
		Note:      "Sold sorted plastic to collector",
	}

	suite.mockTreasuryRepo.On("SaveTreasury", suite.ctx, mock.AnythingOfType("domain.Treasury"), mock.Anything, mock.AnythingOfType("domain.MemberDelta")).
		Run(func(args mock.Arguments) {
			treasury := args.Get(1).(domain.Treasury)
			delta := args.Get(3).(domain.MemberDelta)

			assert.Equal(suite.T(), domain.TreasurySaleToBuyer, treasury.Category)
			assert.False(suite.T(), treasury.TouchesMember())
			assert.Nil(suite.T(), args.Get(2))
			assert.True(suite.T(), delta.IsZero())
		}).
		Return(&domain.Treasury{TreasuryNumber: "TRS202609010001", Amount: req.Amount}, nil, nil).Once()

	resp, err := suite.service.PostTreasury(suite.ctx, req, suite.adminID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "TRS202609010001", resp.TreasuryNumber)
	suite.mockTreasuryRepo.AssertExpectations(suite.T())
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "FindMemberByID")
}

func (suite *TreasuryServiceTestSuite) TestPostTreasury_OperationalNeedWithMember() {
	memberID := suite.member.MemberID
	req := dto.CreateTreasuryRequest{
		Direction: string(domain.DirectionOut),
		Category:  string(domain.TreasuryOperationalNeed),
		Amount:    decimal.NewFromInt(20000),
		MemberID:  &memberID,
		Note:      "Reimbursed member-fronted transport cost",
	}

	suite.mockMemberRepo.On("FindMemberByID", suite.ctx, memberID).Return(&suite.member, nil).Once()
	suite.mockTreasuryRepo.On("SaveTreasury", suite.ctx, mock.AnythingOfType("domain.Treasury"), mock.AnythingOfType("*domain.LedgerEntry"), mock.AnythingOfType("domain.MemberDelta")).
		Run(func(args mock.Arguments) {
			entry := args.Get(2).(*domain.LedgerEntry)
			delta := args.Get(3).(domain.MemberDelta)

			assert.Equal(suite.T(), domain.EntryOperationalAdjustment, entry.Category)
			assert.Equal(suite.T(), domain.DirectionOut, entry.Direction)
			assert.Equal(suite.T(), domain.SourceTreasury, entry.Source.Type)
			assert.True(suite.T(), delta.Balance.Equal(decimal.NewFromInt(-20000)))
			assert.Equal(suite.T(), int64(0), delta.Points)
		}).
		Return(&domain.Treasury{TreasuryNumber: "TRS202609010002", Amount: req.Amount}, &domain.LedgerEntry{}, nil).Once()

	resp, err := suite.service.PostTreasury(suite.ctx, req, suite.adminID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	suite.mockTreasuryRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestPostTreasury_RejectsWithdrawalCategory() {
	req := dto.CreateTreasuryRequest{
		Direction: string(domain.DirectionOut),
		Category:  string(domain.TreasuryMemberWithdrawal),
		Amount:    decimal.NewFromInt(20000),
	}

	_, err := suite.service.PostTreasury(suite.ctx, req, suite.adminID)

	var valErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &valErr)
	assert.Contains(suite.T(), valErr.Fields, "category")
	suite.mockTreasuryRepo.AssertNotCalled(suite.T(), "SaveTreasury")
}

func (suite *TreasuryServiceTestSuite) TestPostTreasury_RejectsMemberOnNonOperational() {
	memberID := suite.member.MemberID
	req := dto.CreateTreasuryRequest{
		Direction: string(domain.DirectionIn),
		Category:  string(domain.TreasurySaleToBuyer),
		Amount:    decimal.NewFromInt(20000),
		MemberID:  &memberID,
	}

	_, err := suite.service.PostTreasury(suite.ctx, req, suite.adminID)

	var valErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &valErr)
	assert.Contains(suite.T(), valErr.Fields, "memberID")
}

func (suite *TreasuryServiceTestSuite) TestPostTreasury_AmountBounds() {
	req := dto.CreateTreasuryRequest{
		Direction: string(domain.DirectionIn),
		Category:  string(domain.TreasurySaleToBuyer),
		Amount:    decimal.NewFromInt(100_000_001),
	}

	_, err := suite.service.PostTreasury(suite.ctx, req, suite.adminID)

	var valErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &valErr)
	assert.Contains(suite.T(), valErr.Fields, "amount")
}

func (suite *TreasuryServiceTestSuite) TestPostTreasury_MemberOutExceedsBalance() {
	memberID := suite.member.MemberID
	suite.member.Balance = decimal.NewFromInt(5000)
	req := dto.CreateTreasuryRequest{
		Direction: string(domain.DirectionOut),
		Category:  string(domain.TreasuryOperationalNeed),
		Amount:    decimal.NewFromInt(20000),
		MemberID:  &memberID,
	}

	suite.mockMemberRepo.On("FindMemberByID", suite.ctx, memberID).Return(&suite.member, nil).Once()

	_, err := suite.service.PostTreasury(suite.ctx, req, suite.adminID)

	var valErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &valErr)
	suite.mockTreasuryRepo.AssertNotCalled(suite.T(), "SaveTreasury")
}

func (suite *TreasuryServiceTestSuite) TestUpdateTreasury_ProtectedRecordRefused() {
	treasuryID := uuid.NewString()
	memberID := suite.member.MemberID
	existing := domain.Treasury{
		TreasuryID: treasuryID,
		Category:   domain.TreasuryMemberWithdrawal,
		Amount:     decimal.NewFromInt(5000),
		MemberID:   &memberID,
	}
	req := dto.UpdateTreasuryRequest{Amount: decimal.NewFromInt(8000)}

	suite.mockTreasuryRepo.On("FindTreasuryByID", suite.ctx, treasuryID).Return(&existing, nil).Once()

	_, err := suite.service.UpdateTreasury(suite.ctx, treasuryID, req, suite.adminID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockTreasuryRepo.AssertNotCalled(suite.T(), "UpdateTreasury")
}

func (suite *TreasuryServiceTestSuite) TestUpdateTreasury_MemberLinkedDelta() {
	treasuryID := uuid.NewString()
	memberID := suite.member.MemberID
	existing := domain.Treasury{
		TreasuryID: treasuryID,
		Direction:  domain.DirectionOut,
		Category:   domain.TreasuryOperationalNeed,
		Amount:     decimal.NewFromInt(20000),
		MemberID:   &memberID,
	}
	req := dto.UpdateTreasuryRequest{Amount: decimal.NewFromInt(15000)}

	suite.mockTreasuryRepo.On("FindTreasuryByID", suite.ctx, treasuryID).Return(&existing, nil).Once()
	suite.mockMemberRepo.On("FindMemberByID", suite.ctx, memberID).Return(&suite.member, nil).Once()
	suite.mockTreasuryRepo.On("UpdateTreasury", suite.ctx, mock.AnythingOfType("domain.Treasury"), mock.AnythingOfType("domain.MemberDelta")).
		Run(func(args mock.Arguments) {
			delta := args.Get(2).(domain.MemberDelta)
			// OUT record shrinking from 20000 to 15000 gives the member back 5000.
			assert.True(suite.T(), delta.Balance.Equal(decimal.NewFromInt(5000)))
		}).
		Return(&domain.Treasury{TreasuryID: treasuryID, Amount: req.Amount}, &domain.LedgerEntry{}, nil).Once()

	resp, err := suite.service.UpdateTreasury(suite.ctx, treasuryID, req, suite.adminID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	suite.mockTreasuryRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestDeleteTreasury_ProtectedRecordRefused() {
	treasuryID := uuid.NewString()
	existing := domain.Treasury{TreasuryID: treasuryID, Category: domain.TreasuryMemberWithdrawal}

	suite.mockTreasuryRepo.On("FindTreasuryByID", suite.ctx, treasuryID).Return(&existing, nil).Once()

	err := suite.service.DeleteTreasury(suite.ctx, treasuryID, suite.adminID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockTreasuryRepo.AssertNotCalled(suite.T(), "DeleteTreasury")
}

func (suite *TreasuryServiceTestSuite) TestDeleteTreasury_ReversesMemberEffect() {
	treasuryID := uuid.NewString()
	memberID := suite.member.MemberID
	existing := domain.Treasury{
		TreasuryID: treasuryID,
		Direction:  domain.DirectionOut,
		Category:   domain.TreasuryOperationalNeed,
		Amount:     decimal.NewFromInt(20000),
		MemberID:   &memberID,
	}

	suite.mockTreasuryRepo.On("FindTreasuryByID", suite.ctx, treasuryID).Return(&existing, nil).Once()
	suite.mockTreasuryRepo.On("DeleteTreasury", suite.ctx, mock.AnythingOfType("domain.Treasury"), mock.AnythingOfType("domain.MemberDelta")).
		Run(func(args mock.Arguments) {
			delta := args.Get(2).(domain.MemberDelta)
			assert.True(suite.T(), delta.Balance.Equal(decimal.NewFromInt(20000)))
		}).
		Return(nil).Once()

	err := suite.service.DeleteTreasury(suite.ctx, treasuryID, suite.adminID)
	assert.NoError(suite.T(), err)
	suite.mockTreasuryRepo.AssertExpectations(suite.T())
}

func TestTreasuryService(t *testing.T) {
	suite.Run(t, new(TreasuryServiceTestSuite))
}
