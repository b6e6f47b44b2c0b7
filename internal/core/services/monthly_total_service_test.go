package services_test

import (
	"context"
	"testing"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	portssvc "github.com/Habanerio/Xpnss-sub003/internal/core/ports/services"
	"github.com/Habanerio/Xpnss-sub003/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type MonthlyTotalServiceTestSuite struct {
	suite.Suite
	mockTotalsRepo *MockMonthlyTotalRepository
	service        portssvc.MonthlyTotalSvcFacade
}

func (suite *MonthlyTotalServiceTestSuite) SetupTest() {
	suite.mockTotalsRepo = new(MockMonthlyTotalRepository)
	suite.service = services.NewMonthlyTotalService(suite.mockTotalsRepo)
}

func (suite *MonthlyTotalServiceTestSuite) TestGetEntityTotalsForYear_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	expected := []domain.MonthlyTotal{
		{UserID: userID, EntityID: accountID, EntityType: domain.EntityTypeAccount, Year: 2025, Month: 6, CreditCount: 2},
		{UserID: userID, EntityID: accountID, EntityType: domain.EntityTypeAccount, Year: 2025, Month: 7, DebitCount: 1},
	}

	suite.mockTotalsRepo.On("ListMonthlyTotalsByEntityYear", ctx, userID, accountID, domain.EntityTypeAccount, 2025).
		Return(expected, nil).Once()

	totals, err := suite.service.GetEntityTotalsForYear(ctx, userID, accountID, domain.EntityTypeAccount, 2025)

	suite.Require().NoError(err)
	suite.Equal(expected, totals)
	suite.mockTotalsRepo.AssertExpectations(suite.T())
}

func (suite *MonthlyTotalServiceTestSuite) TestGetEntityTotalsForYear_EmptyEntityRejected() {
	ctx := context.Background()

	totals, err := suite.service.GetEntityTotalsForYear(ctx, uuid.NewString(), "", domain.EntityTypeAccount, 2025)

	suite.Require().Error(err)
	suite.Nil(totals)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTotalsRepo.AssertNotCalled(suite.T(), "ListMonthlyTotalsByEntityYear")
}

func (suite *MonthlyTotalServiceTestSuite) TestGetTotalsRange_InvertedRangeRejected() {
	ctx := context.Background()

	totals, err := suite.service.GetTotalsRange(ctx, uuid.NewString(), domain.EntityTypeCategory,
		domain.YearMonth{Year: 2025, Month: 6}, domain.YearMonth{Year: 2025, Month: 1})

	suite.Require().Error(err)
	suite.Nil(totals)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTotalsRepo.AssertNotCalled(suite.T(), "ListMonthlyTotalsRange")
}

func (suite *MonthlyTotalServiceTestSuite) TestGetTotalsRange_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	start := domain.YearMonth{Year: 2024, Month: 11}
	end := domain.YearMonth{Year: 2025, Month: 2}

	suite.mockTotalsRepo.On("ListMonthlyTotalsRange", ctx, userID, domain.EntityTypeMerchant, start, end).
		Return([]domain.MonthlyTotal{}, nil).Once()

	totals, err := suite.service.GetTotalsRange(ctx, userID, domain.EntityTypeMerchant, start, end)

	suite.Require().NoError(err)
	suite.NotNil(totals)
	suite.mockTotalsRepo.AssertExpectations(suite.T())
}

func TestMonthlyTotalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MonthlyTotalServiceTestSuite))
}
