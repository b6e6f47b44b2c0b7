package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	portsrepo "github.com/Habanerio/Xpnss-sub003/internal/core/ports/repositories"
	portssvc "github.com/Habanerio/Xpnss-sub003/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testNow() time.Time {
	return time.Date(2025, time.July, 14, 10, 30, 0, 0, time.UTC)
}

func mustMoney(t *testing.T, s string) domain.Money {
	t.Helper()
	m, err := domain.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

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

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionDetails(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionPayment(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	var cat *domain.Category
	if args.Get(0) != nil {
		cat = args.Get(0).(*domain.Category)
	}
	return cat, args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	var cats []domain.Category
	if args.Get(0) != nil {
		cats = args.Get(0).([]domain.Category)
	}
	return cats, args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Mock MerchantRepository ---
type MockMerchantRepository struct {
	mock.Mock
}

var _ portsrepo.MerchantRepositoryFacade = (*MockMerchantRepository)(nil)

func (m *MockMerchantRepository) FindMerchantByID(ctx context.Context, userID, merchantID string) (*domain.Merchant, error) {
	args := m.Called(ctx, userID, merchantID)
	var merchant *domain.Merchant
	if args.Get(0) != nil {
		merchant = args.Get(0).(*domain.Merchant)
	}
	return merchant, args.Error(1)
}

func (m *MockMerchantRepository) ListMerchantsByUser(ctx context.Context, userID string) ([]domain.Merchant, error) {
	args := m.Called(ctx, userID)
	var merchants []domain.Merchant
	if args.Get(0) != nil {
		merchants = args.Get(0).([]domain.Merchant)
	}
	return merchants, args.Error(1)
}

func (m *MockMerchantRepository) SaveMerchant(ctx context.Context, merchant domain.Merchant) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

func (m *MockMerchantRepository) UpdateMerchant(ctx context.Context, merchant domain.Merchant) error {
	args := m.Called(ctx, merchant)
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

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

var _ portssvc.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.TransactionCreated) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
