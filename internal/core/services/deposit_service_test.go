package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

type DepositServiceTestSuite struct {
	suite.Suite
	mockDepositRepo  *MockDepositRepository
	mockMemberRepo   *MockMemberRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.DepositSvcFacade
	ctx              context.Context

	adminID  string
	member   domain.Member
	category domain.WasteCategory
}

func (suite *DepositServiceTestSuite) SetupTest() {
	suite.mockDepositRepo = new(MockDepositRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewDepositService(suite.mockDepositRepo, suite.mockMemberRepo, suite.mockCategoryRepo)
	suite.ctx = context.Background()

	suite.adminID = uuid.NewString()
	suite.member = domain.Member{
		MemberID:      uuid.NewString(),
		MemberNumber:  "MBR-20260901-0001",
		Name:          "Siti Rahma",
		Balance:       decimal.Zero,
		Points:        0,
		TotalWeightKg: decimal.Zero,
		IsActive:      true,
	}
	suite.category = domain.WasteCategory{
		CategoryID:  uuid.NewString(),
		Name:        "Plastic Bottles",
		PricePerKg:  decimal.NewFromInt(3000),
		PointsPerKg: decimal.NewFromInt(3),
		IsActive:    true,
	}
}

func (suite *DepositServiceTestSuite) TestPostDeposit_Success() {
	req := dto.CreateDepositRequest{
		MemberID:   suite.member.MemberID,
		CategoryID: suite.category.CategoryID,
		WeightKg:   decimal.NewFromInt(5),
	}

	suite.mockMemberRepo.On("FindMemberByID", suite.ctx, suite.member.MemberID).Return(&suite.member, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, suite.category.CategoryID).Return(&suite.category, nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", suite.ctx, mock.AnythingOfType("domain.Deposit"), mock.AnythingOfType("domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			deposit := args.Get(1).(domain.Deposit)
			entry := args.Get(2).(domain.LedgerEntry)

			// 5 kg at 3000/kg and 3 pts/kg prices as 15000 balance, 15 points.
			assert.True(suite.T(), deposit.TotalPrice.Equal(decimal.NewFromInt(15000)))
			assert.Equal(suite.T(), int64(15), deposit.PointsEarned)
			assert.True(suite.T(), deposit.PricePerKg.Equal(suite.category.PricePerKg))
			assert.True(suite.T(), deposit.PointsPerKg.Equal(suite.category.PointsPerKg))

			assert.Equal(suite.T(), domain.DirectionIn, entry.Direction)
			assert.Equal(suite.T(), domain.EntryDeposit, entry.Category)
			assert.True(suite.T(), entry.AmountBalance.Equal(decimal.NewFromInt(15000)))
			assert.Equal(suite.T(), int64(15), entry.AmountPoints)
			assert.Equal(suite.T(), domain.SourceDeposit, entry.Source.Type)
			assert.Equal(suite.T(), deposit.DepositID, entry.Source.ID)
			assert.Equal(suite.T(), "Waste deposit: Plastic Bottles, 5 kg", entry.Note)
		}).
		Return(
			&domain.Deposit{
				DepositID:     uuid.NewString(),
				DepositNumber: "DPT-20260901-0001",
				WeightKg:      req.WeightKg,
				TotalPrice:    decimal.NewFromInt(15000),
				PointsEarned:  15,
			},
			&domain.LedgerEntry{TransactionNumber: "TRX202609010001"},
			nil,
		).Once()

	receipt, err := suite.service.PostDeposit(suite.ctx, req, suite.adminID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), receipt)
	assert.Equal(suite.T(), "DPT-20260901-0001", receipt.DepositNumber)
	assert.Equal(suite.T(), "Plastic Bottles", receipt.CategoryName)
	assert.True(suite.T(), receipt.TotalPrice.Equal(decimal.NewFromInt(15000)))
	assert.Equal(suite.T(), int64(15), receipt.PointsEarned)
	suite.mockDepositRepo.AssertExpectations(suite.T())
	suite.mockMemberRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestPostDeposit_PointsTruncate() {
	req := dto.CreateDepositRequest{
		MemberID:   suite.member.MemberID,
		CategoryID: suite.category.CategoryID,
		WeightKg:   decimal.RequireFromString("2.5"),
	}

	suite.mockMemberRepo.On("FindMemberByID", suite.ctx, suite.member.MemberID).Return(&suite.member, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, suite.category.CategoryID).Return(&suite.category, nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", suite.ctx, mock.AnythingOfType("domain.Deposit"), mock.AnythingOfType("domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			deposit := args.Get(1).(domain.Deposit)
			// 2.5 * 3 = 7.5 points truncates down to 7, value stays exact.
			assert.Equal(suite.T(), int64(7), deposit.PointsEarned)
			assert.True(suite.T(), deposit.TotalPrice.Equal(decimal.NewFromInt(7500)))
		}).
		Return(&domain.Deposit{PointsEarned: 7, TotalPrice: decimal.NewFromInt(7500)}, &domain.LedgerEntry{}, nil).Once()

	_, err := suite.service.PostDeposit(suite.ctx, req, suite.adminID)
	assert.NoError(suite.T(), err)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestPostDeposit_NonPositiveWeight() {
	req := dto.CreateDepositRequest{
		MemberID:   suite.member.MemberID,
		CategoryID: suite.category.CategoryID,
		WeightKg:   decimal.Zero,
	}

	_, err := suite.service.PostDeposit(suite.ctx, req, suite.adminID)

	var valErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &valErr)
	assert.Contains(suite.T(), valErr.Fields, "weightKg")
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "SaveDeposit")
}

func (suite *DepositServiceTestSuite) TestPostDeposit_WeightOverScaleRange() {
	req := dto.CreateDepositRequest{
		MemberID:   suite.member.MemberID,
		CategoryID: suite.category.CategoryID,
		WeightKg:   decimal.NewFromInt(10000),
	}

	_, err := suite.service.PostDeposit(suite.ctx, req, suite.adminID)

	var valErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &valErr)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "SaveDeposit")
}

func (suite *DepositServiceTestSuite) TestPostDeposit_InactiveMember() {
	suite.member.IsActive = false
	req := dto.CreateDepositRequest{
		MemberID:   suite.member.MemberID,
		CategoryID: suite.category.CategoryID,
		WeightKg:   decimal.NewFromInt(5),
	}

	suite.mockMemberRepo.On("FindMemberByID", suite.ctx, suite.member.MemberID).Return(&suite.member, nil).Once()

	_, err := suite.service.PostDeposit(suite.ctx, req, suite.adminID)

	var valErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &valErr)
	assert.Contains(suite.T(), valErr.Fields, "memberID")
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "SaveDeposit")
}

func (suite *DepositServiceTestSuite) TestPostDeposit_InactiveCategory() {
	suite.category.IsActive = false
	req := dto.CreateDepositRequest{
		MemberID:   suite.member.MemberID,
		CategoryID: suite.category.CategoryID,
		WeightKg:   decimal.NewFromInt(5),
	}

	suite.mockMemberRepo.On("FindMemberByID", suite.ctx, suite.member.MemberID).Return(&suite.member, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, suite.category.CategoryID).Return(&suite.category, nil).Once()

	_, err := suite.service.PostDeposit(suite.ctx, req, suite.adminID)

	var valErr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &valErr)
	assert.Contains(suite.T(), valErr.Fields, "categoryID")
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "SaveDeposit")
}

func (suite *DepositServiceTestSuite) TestPostDeposit_MemberNotFound() {
	req := dto.CreateDepositRequest{
		MemberID:   suite.member.MemberID,
		CategoryID: suite.category.CategoryID,
		WeightKg:   decimal.NewFromInt(5),
	}

	suite.mockMemberRepo.On("FindMemberByID", suite.ctx, suite.member.MemberID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostDeposit(suite.ctx, req, suite.adminID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *DepositServiceTestSuite) TestUpdateDeposit_FrozenRatesAndDelta() {
	depositID := uuid.NewString()
	existing := domain.Deposit{
		DepositID:    depositID,
		MemberID:     suite.member.MemberID,
		CategoryID:   suite.category.CategoryID,
		WeightKg:     decimal.NewFromInt(5),
		PricePerKg:   decimal.NewFromInt(3000),
		PointsPerKg:  decimal.NewFromInt(3),
		TotalPrice:   decimal.NewFromInt(15000),
		PointsEarned: 15,
		AuditFields:  domain.AuditFields{CreatedAt: time.Now().Add(-time.Hour)},
	}
	req := dto.UpdateDepositRequest{WeightKg: decimal.NewFromInt(3)}

	suite.mockDepositRepo.On("FindDepositByID", suite.ctx, depositID).Return(&existing, nil).Once()
	suite.mockDepositRepo.On("UpdateDeposit", suite.ctx, mock.AnythingOfType("domain.Deposit"), mock.AnythingOfType("domain.MemberDelta")).
		Run(func(args mock.Arguments) {
			deposit := args.Get(1).(domain.Deposit)
			delta := args.Get(2).(domain.MemberDelta)

			// Correction re-derives from the rates frozen at post time.
			assert.True(suite.T(), deposit.TotalPrice.Equal(decimal.NewFromInt(9000)))
			assert.Equal(suite.T(), int64(9), deposit.PointsEarned)

			// Member absorbs new effect minus old effect.
			assert.True(suite.T(), delta.Balance.Equal(decimal.NewFromInt(-6000)))
			assert.Equal(suite.T(), int64(-6), delta.Points)
			assert.True(suite.T(), delta.WeightKg.Equal(decimal.NewFromInt(-2)))
		}).
		Return(&domain.Deposit{DepositID: depositID, TotalPrice: decimal.NewFromInt(9000), PointsEarned: 9}, &domain.LedgerEntry{}, nil).Once()

	resp, err := suite.service.UpdateDeposit(suite.ctx, depositID, req, suite.adminID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestUpdateDeposit_NotFound() {
	depositID := uuid.NewString()
	req := dto.UpdateDepositRequest{WeightKg: decimal.NewFromInt(3)}

	suite.mockDepositRepo.On("FindDepositByID", suite.ctx, depositID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateDeposit(suite.ctx, depositID, req, suite.adminID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *DepositServiceTestSuite) TestUpdateDeposit_ConflictFromRepo() {
	depositID := uuid.NewString()
	existing := domain.Deposit{
		DepositID:    depositID,
		MemberID:     suite.member.MemberID,
		WeightKg:     decimal.NewFromInt(5),
		PricePerKg:   decimal.NewFromInt(3000),
		PointsPerKg:  decimal.NewFromInt(3),
		TotalPrice:   decimal.NewFromInt(15000),
		PointsEarned: 15,
	}
	req := dto.UpdateDepositRequest{WeightKg: decimal.NewFromInt(1)}

	suite.mockDepositRepo.On("FindDepositByID", suite.ctx, depositID).Return(&existing, nil).Once()
	suite.mockDepositRepo.On("UpdateDeposit", suite.ctx, mock.AnythingOfType("domain.Deposit"), mock.AnythingOfType("domain.MemberDelta")).
		Return(nil, nil, apperrors.ErrConflict).Once()

	_, err := suite.service.UpdateDeposit(suite.ctx, depositID, req, suite.adminID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

func (suite *DepositServiceTestSuite) TestDeleteDeposit_Success() {
	depositID := uuid.NewString()
	existing := domain.Deposit{
		DepositID:    depositID,
		MemberID:     suite.member.MemberID,
		WeightKg:     decimal.NewFromInt(5),
		TotalPrice:   decimal.NewFromInt(15000),
		PointsEarned: 15,
	}

	suite.mockDepositRepo.On("FindDepositByID", suite.ctx, depositID).Return(&existing, nil).Once()
	suite.mockDepositRepo.On("DeleteDeposit", suite.ctx, mock.AnythingOfType("domain.Deposit")).
		Run(func(args mock.Arguments) {
			deposit := args.Get(1).(domain.Deposit)
			assert.Equal(suite.T(), suite.adminID, deposit.LastUpdatedBy)
		}).
		Return(nil).Once()

	err := suite.service.DeleteDeposit(suite.ctx, depositID, suite.adminID)
	assert.NoError(suite.T(), err)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestDeleteDeposit_RepoError() {
	depositID := uuid.NewString()
	existing := domain.Deposit{DepositID: depositID}
	repoErr := errors.New("tx failed")

	suite.mockDepositRepo.On("FindDepositByID", suite.ctx, depositID).Return(&existing, nil).Once()
	suite.mockDepositRepo.On("DeleteDeposit", suite.ctx, mock.AnythingOfType("domain.Deposit")).Return(repoErr).Once()

	err := suite.service.DeleteDeposit(suite.ctx, depositID, suite.adminID)
	assert.ErrorIs(suite.T(), err, repoErr)
}

func (suite *DepositServiceTestSuite) TestListDepositsByMember_ClampsLimit() {
	suite.mockDepositRepo.On("ListDepositsByMember", suite.ctx, suite.member.MemberID, 20, 0).
		Return([]domain.Deposit{}, nil).Once()

	_, err := suite.service.ListDepositsByMember(suite.ctx, suite.member.MemberID, 500, -3)
	assert.NoError(suite.T(), err)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func TestDepositService(t *testing.T) {
	suite.Run(t, new(DepositServiceTestSuite))
}
