package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	"github.com/Habanerio/Xpnss-sub003/internal/core/events"
	portsrepo "github.com/Habanerio/Xpnss-sub003/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountBalance(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAdjustments(ctx context.Context, entries []domain.AdjustmentEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// --- Mock MonthlyTotalRepository ---
type MockMonthlyTotalRepository struct {
	mock.Mock
}

var _ portsrepo.MonthlyTotalRepositoryFacade = (*MockMonthlyTotalRepository)(nil)

func (m *MockMonthlyTotalRepository) FindMonthlyTotal(ctx context.Context, key portsrepo.MonthlyTotalKey) (*domain.MonthlyTotal, error) {
	args := m.Called(ctx, key)
	var total *domain.MonthlyTotal
	if args.Get(0) != nil {
		total = args.Get(0).(*domain.MonthlyTotal)
	}
	return total, args.Error(1)
}

func (m *MockMonthlyTotalRepository) ListMonthlyTotalsByEntityYear(ctx context.Context, userID, entityID string, entityType domain.EntityType, year int) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, userID, entityID, entityType, year)
	var totals []domain.MonthlyTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.MonthlyTotal)
	}
	return totals, args.Error(1)
}

func (m *MockMonthlyTotalRepository) ListMonthlyTotalsRange(ctx context.Context, userID string, entityType domain.EntityType, start, end domain.YearMonth) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, userID, entityType, start, end)
	var totals []domain.MonthlyTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.MonthlyTotal)
	}
	return totals, args.Error(1)
}

func (m *MockMonthlyTotalRepository) UpsertMonthlyTotal(ctx context.Context, key portsrepo.MonthlyTotalKey, isCredit bool, amount domain.Money) error {
	args := m.Called(ctx, key, isCredit, amount)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionCreatedHandlerTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTotalsRepo  *MockMonthlyTotalRepository
	handler         *events.TransactionCreatedHandler
}

func (suite *TransactionCreatedHandlerTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTotalsRepo = new(MockMonthlyTotalRepository)
	suite.handler = events.NewTransactionCreatedHandler(suite.mockAccountRepo, suite.mockTotalsRepo)
}

func mustMoney(t *testing.T, s string) domain.Money {
	t.Helper()
	m, err := domain.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func (suite *TransactionCreatedHandlerTestSuite) account(userID, accountID string, accountType domain.AccountType, balance string) *domain.Account {
	params := domain.NewAccountParams{
		AccountID:   accountID,
		UserID:      userID,
		AccountType: accountType,
		Name:        "Propagation Target",
		Balance:     mustMoney(suite.T(), balance),
	}
	if accountType.SupportsCreditLimit() {
		params.CreditLimit = mustMoney(suite.T(), "5000.00")
	}
	account, err := domain.NewAccount(params, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	account.Version = 1
	return account
}

// A deposit into an asset account raises the balance and lands on the credit
// side of the account rollup.
func (suite *TransactionCreatedHandlerTestSuite) TestDepositIntoChecking() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	txnDate := time.Date(2025, time.July, 14, 12, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(suite.account(userID, accountID, domain.AccountTypeChecking, "100.00"), nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalance", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Balance.String() == "150.00"
	})).Return(nil).Once()
	suite.mockTotalsRepo.On("UpsertMonthlyTotal", ctx, portsrepo.MonthlyTotalKey{
		UserID:     userID,
		EntityID:   accountID,
		EntityType: domain.EntityTypeAccount,
		Year:       2025,
		Month:      7,
	}, true, mustMoney(suite.T(), "50.00")).Return(nil).Once()

	err := suite.handler.Handle(ctx, domain.TransactionCreated{
		EventID:              uuid.NewString(),
		UserID:               userID,
		AccountID:            accountID,
		TransactionID:        uuid.NewString(),
		TransactionType:      domain.TransactionTypeDeposit,
		Amount:               mustMoney(suite.T(), "50.00"),
		DateOfTransactionUTC: txnDate,
	})

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTotalsRepo.AssertExpectations(suite.T())
}

// A charge against a liability account grows the debt and lands on the debit
// side of the account rollup.
func (suite *TransactionCreatedHandlerTestSuite) TestChargeOnCreditCard() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	txnDate := time.Date(2025, time.July, 14, 12, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(suite.account(userID, accountID, domain.AccountTypeCreditCard, "0.00"), nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalance", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Balance.String() == "75.00"
	})).Return(nil).Once()
	suite.mockTotalsRepo.On("UpsertMonthlyTotal", ctx, portsrepo.MonthlyTotalKey{
		UserID:     userID,
		EntityID:   accountID,
		EntityType: domain.EntityTypeAccount,
		Year:       2025,
		Month:      7,
	}, false, mustMoney(suite.T(), "75.00")).Return(nil).Once()

	err := suite.handler.Handle(ctx, domain.TransactionCreated{
		EventID:              uuid.NewString(),
		UserID:               userID,
		AccountID:            accountID,
		TransactionID:        uuid.NewString(),
		TransactionType:      domain.TransactionTypeCharge,
		Amount:               mustMoney(suite.T(), "75.00"),
		DateOfTransactionUTC: txnDate,
	})

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTotalsRepo.AssertExpectations(suite.T())
}

// Category and merchant rollups are written in addition to the account rollup.
func (suite *TransactionCreatedHandlerTestSuite) TestCategoryAndMerchantRollups() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	merchantID := uuid.NewString()
	categoryID := uuid.NewString()
	txnDate := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(suite.account(userID, accountID, domain.AccountTypeChecking, "500.00"), nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalance", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Once()

	keyFor := func(entityID string, entityType domain.EntityType) portsrepo.MonthlyTotalKey {
		return portsrepo.MonthlyTotalKey{
			UserID:     userID,
			EntityID:   entityID,
			EntityType: entityType,
			Year:       2025,
			Month:      3,
		}
	}
	suite.mockTotalsRepo.On("UpsertMonthlyTotal", ctx, keyFor(accountID, domain.EntityTypeAccount),
		false, mustMoney(suite.T(), "60.00")).Return(nil).Once()
	suite.mockTotalsRepo.On("UpsertMonthlyTotal", ctx, keyFor(categoryID, domain.EntityTypeCategory),
		false, mustMoney(suite.T(), "60.00")).Return(nil).Once()
	suite.mockTotalsRepo.On("UpsertMonthlyTotal", ctx, keyFor(merchantID, domain.EntityTypeMerchant),
		false, mustMoney(suite.T(), "60.00")).Return(nil).Once()

	err := suite.handler.Handle(ctx, domain.TransactionCreated{
		EventID:         uuid.NewString(),
		UserID:          userID,
		AccountID:       accountID,
		TransactionID:   uuid.NewString(),
		MerchantID:      merchantID,
		TransactionType: domain.TransactionTypePurchase,
		Amount:          mustMoney(suite.T(), "60.00"),
		CategoryAmounts: map[string]domain.Money{
			categoryID: mustMoney(suite.T(), "60.00"),
		},
		DateOfTransactionUTC: txnDate,
	})

	suite.Require().NoError(err)
	suite.mockTotalsRepo.AssertExpectations(suite.T())
}

// A missing account is fatal for the delivery: nothing else is attempted.
func (suite *TransactionCreatedHandlerTestSuite) TestAccountNotFoundIsFatal() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.handler.Handle(ctx, domain.TransactionCreated{
		EventID:              uuid.NewString(),
		UserID:               userID,
		AccountID:            accountID,
		TransactionID:        uuid.NewString(),
		TransactionType:      domain.TransactionTypeDeposit,
		Amount:               mustMoney(suite.T(), "10.00"),
		DateOfTransactionUTC: time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTotalsRepo.AssertNotCalled(suite.T(), "UpsertMonthlyTotal")
}

// A failed rollup upsert does not block the remaining rollups.
func (suite *TransactionCreatedHandlerTestSuite) TestRollupFailureDoesNotBlockOthers() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, userID, accountID).
		Return(suite.account(userID, accountID, domain.AccountTypeChecking, "100.00"), nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalance", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Once()

	suite.mockTotalsRepo.On("UpsertMonthlyTotal", ctx, mock.MatchedBy(func(key portsrepo.MonthlyTotalKey) bool {
		return key.EntityType == domain.EntityTypeAccount
	}), false, mock.AnythingOfType("domain.Money")).Return(assert.AnError).Once()
	suite.mockTotalsRepo.On("UpsertMonthlyTotal", ctx, mock.MatchedBy(func(key portsrepo.MonthlyTotalKey) bool {
		return key.EntityType == domain.EntityTypeCategory && key.EntityID == categoryID
	}), false, mock.AnythingOfType("domain.Money")).Return(nil).Once()

	err := suite.handler.Handle(ctx, domain.TransactionCreated{
		EventID:         uuid.NewString(),
		UserID:          userID,
		AccountID:       accountID,
		TransactionID:   uuid.NewString(),
		TransactionType: domain.TransactionTypeWithdrawal,
		Amount:          mustMoney(suite.T(), "25.00"),
		CategoryAmounts: map[string]domain.Money{
			categoryID: mustMoney(suite.T(), "25.00"),
		},
		DateOfTransactionUTC: time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC),
	})

	suite.Require().Error(err)
	suite.mockTotalsRepo.AssertExpectations(suite.T())
}

func TestTransactionCreatedHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionCreatedHandlerTestSuite))
}
