package domain

import (
	"fmt"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/google/uuid"
)

// TransactionType classifies a recorded monetary event.
type TransactionType string

const (
	TransactionTypeCharge     TransactionType = "CHARGE"
	TransactionTypeCredit     TransactionType = "CREDIT"
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeIncome     TransactionType = "INCOME"
	TransactionTypePurchase   TransactionType = "PURCHASE"
	TransactionTypeRefund     TransactionType = "REFUND"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// TransactionTypes lists every supported transaction type.
var TransactionTypes = []TransactionType{
	TransactionTypeCharge,
	TransactionTypeCredit,
	TransactionTypeDeposit,
	TransactionTypeIncome,
	TransactionTypePurchase,
	TransactionTypeRefund,
	TransactionTypeTransfer,
	TransactionTypeWithdrawal,
}

// ParseTransactionType validates a raw string against the closed type set.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	switch t {
	case TransactionTypeCharge, TransactionTypeCredit, TransactionTypeDeposit,
		TransactionTypeIncome, TransactionTypePurchase, TransactionTypeRefund,
		TransactionTypeTransfer, TransactionTypeWithdrawal:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, s)
}

// IsCreditType classifies a transaction type as a credit movement (money in
// the account's favor) or a debit movement. The mapping is exhaustive over
// the closed type set; an unknown type is an error, never a silent default.
//
// TRANSFER is the outgoing side of a transfer and therefore a debit; the
// receiving account records a DEPOSIT.
func IsCreditType(t TransactionType) (bool, error) {
	switch t {
	case TransactionTypeCredit, TransactionTypeDeposit, TransactionTypeIncome, TransactionTypeRefund:
		return true, nil
	case TransactionTypeCharge, TransactionTypePurchase, TransactionTypeTransfer, TransactionTypeWithdrawal:
		return false, nil
	}
	return false, fmt.Errorf("unknown transaction type %q", t)
}

// TransactionItem is one line of a transaction: an amount classified by
// category. The category reference is by id only.
type TransactionItem struct {
	ItemID      string `json:"itemID"`
	CategoryID  string `json:"categoryID"`
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
}

// Transaction records one monetary event against one account. It is the
// durable source of truth for balance and rollup propagation; derived updates
// flow from its TransactionCreated event.
type Transaction struct {
	TransactionID   string            `json:"transactionID"`
	UserID          string            `json:"userID"`
	AccountID       string            `json:"accountID"`
	TransactionType TransactionType   `json:"transactionType"`
	Description     string            `json:"description"`
	MerchantID      string            `json:"merchantID,omitempty"`
	Items           []TransactionItem `json:"items"`
	TransactionDate time.Time         `json:"transactionDate"`
	TotalPaid       Money             `json:"totalPaid"`
	DatePaid        *time.Time        `json:"datePaid,omitempty"`
	AuditFields

	pendingEvents []TransactionCreated
}

// NewTransaction creates a transaction after validating its inputs and records
// one pending TransactionCreated event for later dispatch. Future-dated
// transactions are allowed.
func NewTransaction(userID, accountID string, txType TransactionType, description, merchantID string, items []TransactionItem, transactionDate time.Time, now time.Time) (*Transaction, error) {
	verr := &apperrors.ValidationError{}
	if userID == "" {
		verr.AddField("userID", "must not be empty")
	}
	if accountID == "" {
		verr.AddField("accountID", "must not be empty")
	}
	if _, err := ParseTransactionType(string(txType)); err != nil {
		verr.AddField("transactionType", fmt.Sprintf("unknown transaction type %q", txType))
	}
	if len(items) == 0 {
		verr.AddField("items", "at least one item is required")
	}
	total := ZeroMoney()
	for i, item := range items {
		if item.Amount.IsNegative() {
			verr.AddField(fmt.Sprintf("items[%d].amount", i), "must not be negative")
			continue
		}
		total = total.Add(item.Amount)
	}
	if len(items) > 0 && !total.GreaterThan(ZeroMoney()) {
		verr.AddField("items", "total amount must be greater than zero")
	}
	if verr.HasFields() {
		return nil, verr
	}

	txn := &Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		AccountID:       accountID,
		TransactionType: txType,
		Description:     description,
		MerchantID:      merchantID,
		Items:           normalizeItems(items),
		TransactionDate: transactionDate,
		TotalPaid:       ZeroMoney(),
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	txn.pendingEvents = append(txn.pendingEvents, TransactionCreated{
		EventID:              uuid.NewString(),
		UserID:               userID,
		AccountID:            accountID,
		TransactionID:        txn.TransactionID,
		MerchantID:           merchantID,
		TransactionType:      txType,
		Amount:               txn.TotalAmount(),
		CategoryAmounts:      txn.categorySplit(),
		DateOfTransactionUTC: transactionDate.UTC(),
	})
	return txn, nil
}

func normalizeItems(items []TransactionItem) []TransactionItem {
	out := make([]TransactionItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ItemID == "" {
			out[i].ItemID = uuid.NewString()
		}
	}
	return out
}

// TotalAmount is the sum of all item amounts.
func (t *Transaction) TotalAmount() Money {
	total := ZeroMoney()
	for _, item := range t.Items {
		total = total.Add(item.Amount)
	}
	return total
}

// Owing is the remaining unpaid portion of the transaction.
func (t *Transaction) Owing() Money {
	return t.TotalAmount().Sub(t.TotalPaid)
}

// IsPaid reports whether the transaction has been paid in full.
func (t *Transaction) IsPaid() bool {
	return t.Owing().IsZero()
}

// ApplyPayment records a payment against the transaction. TotalPaid never
// exceeds TotalAmount.
func (t *Transaction) ApplyPayment(date time.Time, amount Money) error {
	if !amount.GreaterThan(ZeroMoney()) {
		return fmt.Errorf("%w: payment amount must be greater than zero", apperrors.ErrValidation)
	}
	newPaid := t.TotalPaid.Add(amount)
	if newPaid.GreaterThan(t.TotalAmount()) {
		return fmt.Errorf("%w: payment of %s exceeds amount owing %s", apperrors.ErrValidation, amount, t.Owing())
	}
	t.TotalPaid = newPaid
	if t.IsPaid() {
		t.DatePaid = &date
	}
	t.Touch(date)
	return nil
}

// UpdateDetails amends description and date. This narrow path never touches
// amounts and never re-emits a TransactionCreated event, so balances and
// rollups built from the original event are left untouched.
func (t *Transaction) UpdateDetails(description string, transactionDate time.Time, now time.Time) {
	t.Description = description
	t.TransactionDate = transactionDate
	t.Touch(now)
}

// PendingEvents returns events recorded by the aggregate and not yet
// dispatched.
func (t *Transaction) PendingEvents() []TransactionCreated {
	return t.pendingEvents
}

// ClearPendingEvents drops recorded events once they have been handed to the
// dispatcher.
func (t *Transaction) ClearPendingEvents() {
	t.pendingEvents = nil
}

func (t *Transaction) categorySplit() map[string]Money {
	split := make(map[string]Money, len(t.Items))
	for _, item := range t.Items {
		if item.CategoryID == "" {
			continue
		}
		if existing, ok := split[item.CategoryID]; ok {
			split[item.CategoryID] = existing.Add(item.Amount)
		} else {
			split[item.CategoryID] = item.Amount
		}
	}
	return split
}
