package domain_test

import (
	"testing"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItems(t *testing.T, amounts ...string) []domain.TransactionItem {
	t.Helper()
	items := make([]domain.TransactionItem, len(amounts))
	for i, a := range amounts {
		items[i] = domain.TransactionItem{
			CategoryID:  "cat-1",
			Description: "item",
			Amount:      mustMoney(t, a),
		}
	}
	return items
}

func TestIsCreditType_Exhaustive(t *testing.T) {
	want := map[domain.TransactionType]bool{
		domain.TransactionTypeCharge:     false,
		domain.TransactionTypeCredit:     true,
		domain.TransactionTypeDeposit:    true,
		domain.TransactionTypeIncome:     true,
		domain.TransactionTypePurchase:   false,
		domain.TransactionTypeRefund:     true,
		domain.TransactionTypeTransfer:   false,
		domain.TransactionTypeWithdrawal: false,
	}

	// Every enum value must be mapped.
	for _, tt := range domain.TransactionTypes {
		got, err := domain.IsCreditType(tt)
		require.NoError(t, err, "type %s must be mapped", tt)
		assert.Equal(t, want[tt], got, "type %s", tt)
	}

	_, err := domain.IsCreditType(domain.TransactionType("BOGUS"))
	assert.Error(t, err)
}

func TestNewTransaction_TotalAmount(t *testing.T) {
	now := time.Now().UTC()
	txn, err := domain.NewTransaction("user-1", "acc-1", domain.TransactionTypePurchase, "groceries", "merch-1",
		newTestItems(t, "10.25", "4.75", "0.00"), now, now)
	require.NoError(t, err)

	assert.Equal(t, "15.00", txn.TotalAmount().String())
	assert.True(t, txn.TotalPaid.IsZero())
	assert.Equal(t, "15.00", txn.Owing().String())
	assert.False(t, txn.IsPaid())
}

func TestNewTransaction_Validation(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		userID    string
		accountID string
		txType    domain.TransactionType
		items     []domain.TransactionItem
	}{
		{name: "empty user id", userID: "", accountID: "acc-1", txType: domain.TransactionTypeDeposit, items: newTestItems(t, "1.00")},
		{name: "empty account id", userID: "user-1", accountID: "", txType: domain.TransactionTypeDeposit, items: newTestItems(t, "1.00")},
		{name: "unknown type", userID: "user-1", accountID: "acc-1", txType: "NOPE", items: newTestItems(t, "1.00")},
		{name: "no items", userID: "user-1", accountID: "acc-1", txType: domain.TransactionTypeDeposit, items: nil},
		{name: "negative item amount", userID: "user-1", accountID: "acc-1", txType: domain.TransactionTypeDeposit, items: newTestItems(t, "-1.00")},
		{name: "zero total", userID: "user-1", accountID: "acc-1", txType: domain.TransactionTypeDeposit, items: newTestItems(t, "0.00", "0.00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := domain.NewTransaction(tt.userID, tt.accountID, tt.txType, "", "", tt.items, now, now)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Nil(t, txn)
		})
	}
}

func TestNewTransaction_EmitsPendingEvent(t *testing.T) {
	now := time.Now().UTC()
	date := now.AddDate(0, 0, 3) // future-dated transactions are allowed

	items := []domain.TransactionItem{
		{CategoryID: "cat-food", Amount: mustMoney(t, "30.00")},
		{CategoryID: "cat-food", Amount: mustMoney(t, "10.00")},
		{CategoryID: "cat-fuel", Amount: mustMoney(t, "55.00")},
		{CategoryID: "", Amount: mustMoney(t, "5.00")}, // uncategorized
	}
	txn, err := domain.NewTransaction("user-1", "acc-1", domain.TransactionTypePurchase, "shopping", "merch-1", items, date, now)
	require.NoError(t, err)

	events := txn.PendingEvents()
	require.Len(t, events, 1)

	ev := events[0]
	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, "user-1", ev.UserID)
	assert.Equal(t, "acc-1", ev.AccountID)
	assert.Equal(t, txn.TransactionID, ev.TransactionID)
	assert.Equal(t, "merch-1", ev.MerchantID)
	assert.Equal(t, domain.TransactionTypePurchase, ev.TransactionType)
	assert.Equal(t, "100.00", ev.Amount.String())
	assert.Equal(t, date.UTC(), ev.DateOfTransactionUTC)

	// Items split by category; uncategorized items are excluded from the split.
	require.Len(t, ev.CategoryAmounts, 2)
	assert.Equal(t, "40.00", ev.CategoryAmounts["cat-food"].String())
	assert.Equal(t, "55.00", ev.CategoryAmounts["cat-fuel"].String())

	txn.ClearPendingEvents()
	assert.Empty(t, txn.PendingEvents())
}

func TestTransaction_ApplyPayment(t *testing.T) {
	now := time.Now().UTC()
	txn, err := domain.NewTransaction("user-1", "acc-1", domain.TransactionTypeCharge, "", "",
		newTestItems(t, "100.00"), now, now)
	require.NoError(t, err)

	require.NoError(t, txn.ApplyPayment(now, mustMoney(t, "40.00")))
	assert.Equal(t, "60.00", txn.Owing().String())
	assert.Nil(t, txn.DatePaid)

	// Over-payment is rejected and leaves state untouched.
	err = txn.ApplyPayment(now, mustMoney(t, "60.01"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "40.00", txn.TotalPaid.String())

	// Zero and negative payments are rejected.
	assert.ErrorIs(t, txn.ApplyPayment(now, domain.ZeroMoney()), apperrors.ErrValidation)
	assert.ErrorIs(t, txn.ApplyPayment(now, mustMoney(t, "-5.00")), apperrors.ErrValidation)

	paidAt := now.Add(time.Hour)
	require.NoError(t, txn.ApplyPayment(paidAt, mustMoney(t, "60.00")))
	assert.True(t, txn.IsPaid())
	require.NotNil(t, txn.DatePaid)
	assert.Equal(t, paidAt, *txn.DatePaid)
}

func TestTransaction_UpdateDetailsDoesNotReEmit(t *testing.T) {
	now := time.Now().UTC()
	txn, err := domain.NewTransaction("user-1", "acc-1", domain.TransactionTypeDeposit, "old", "",
		newTestItems(t, "10.00"), now, now)
	require.NoError(t, err)
	txn.ClearPendingEvents()

	newDate := now.AddDate(0, 0, -1)
	txn.UpdateDetails("corrected description", newDate, now)

	assert.Equal(t, "corrected description", txn.Description)
	assert.Equal(t, newDate, txn.TransactionDate)
	assert.Empty(t, txn.PendingEvents(), "amendments must not re-trigger propagation")
	assert.Equal(t, "10.00", txn.TotalAmount().String())
}
