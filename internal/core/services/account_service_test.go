package services_test

import (
	"context"
	"testing"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	portssvc "github.com/Habanerio/Xpnss-sub003/internal/core/ports/services"
	"github.com/Habanerio/Xpnss-sub003/internal/core/services"
	"github.com/Habanerio/Xpnss-sub003/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// --- CreateAccount Tests ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	req := dto.CreateAccountRequest{
		Name:        "Everyday Checking",
		AccountType: "CHECKING",
		Balance:     decp("250.00"),
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.UserID == userID &&
			acc.AccountType == domain.AccountTypeChecking &&
			acc.Balance.String() == "250.00" &&
			acc.AccountID != ""
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("Everyday Checking", account.Name)
	suite.True(account.IsTransient())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CreditLimitOnCashRejected() {
	ctx := context.Background()

	req := dto.CreateAccountRequest{
		Name:        "Wallet",
		AccountType: "CASH",
		CreditLimit: decp("500.00"),
	}

	account, err := suite.service.CreateAccount(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrCapabilityNotSupported)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()

	req := dto.CreateAccountRequest{
		Name:        "Savings",
		AccountType: "SAVINGS",
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(assert.AnError).Once()

	account, err := suite.service.CreateAccount(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- GetAccountByID Tests ---

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, userID, accountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- Adjustment Tests ---

func (suite *AccountServiceTestSuite) TestAdjustCreditLimit_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	existing := suite.persistedAccount(userID, accountID, domain.AccountTypeCreditCard)

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.CreditLimit.String() == "2500.00"
	})).Return(nil).Once()
	suite.mockAccountRepo.On("SaveAdjustments", ctx, mock.MatchedBy(func(entries []domain.AdjustmentEntry) bool {
		return len(entries) == 1 &&
			entries[0].AccountID == accountID &&
			entries[0].NewValue == "2500.00"
	})).Return(nil).Once()

	account, err := suite.service.AdjustCreditLimit(ctx, userID, accountID, dto.AdjustValueRequest{
		NewValue: decimal.RequireFromString("2500.00"),
		Reason:   "limit increase approved",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("2500.00", account.CreditLimit.String())
	suite.Empty(account.PendingAdjustments())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestAdjustCreditLimit_UnsupportedOnChecking() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	existing := suite.persistedAccount(userID, accountID, domain.AccountTypeChecking)

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(existing, nil).Once()

	account, err := suite.service.AdjustCreditLimit(ctx, userID, accountID, dto.AdjustValueRequest{
		NewValue: decimal.RequireFromString("1000.00"),
	})

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrCapabilityNotSupported)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

func (suite *AccountServiceTestSuite) TestAdjustOverdraftAmount_ConflictPropagates() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	existing := suite.persistedAccount(userID, accountID, domain.AccountTypeChecking)

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrConflict).Once()

	account, err := suite.service.AdjustOverdraftAmount(ctx, userID, accountID, dto.AdjustValueRequest{
		NewValue: decimal.RequireFromString("100.00"),
	})

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- Lifecycle Tests ---

func (suite *AccountServiceTestSuite) TestCloseAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	existing := suite.persistedAccount(userID, accountID, domain.AccountTypeSavings)

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.DateClosed != nil
	})).Return(nil).Once()

	account, err := suite.service.CloseAccount(ctx, userID, accountID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.True(account.IsClosed())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	existing := suite.persistedAccount(userID, accountID, domain.AccountTypeCash)

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.DateDeleted != nil
	})).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, userID, accountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) persistedAccount(userID, accountID string, accountType domain.AccountType) *domain.Account {
	params := domain.NewAccountParams{
		AccountID:   accountID,
		UserID:      userID,
		AccountType: accountType,
		Name:        "Test Account",
	}
	if accountType.SupportsCreditLimit() {
		params.CreditLimit = mustMoney(suite.T(), "1000.00")
	}
	account, err := domain.NewAccount(params, testNow())
	suite.Require().NoError(err)
	account.Version = 1
	return account
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
