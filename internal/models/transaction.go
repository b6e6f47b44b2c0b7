package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the header row of a recorded monetary event.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	AccountID       string          `db:"account_id"`
	TransactionType string          `db:"transaction_type"`
	Description     string          `db:"description"`
	MerchantID      string          `db:"merchant_id"` // Nullable
	TransactionDate time.Time       `db:"transaction_date"`
	TotalPaid       decimal.Decimal `db:"total_paid"`
	DatePaid        *time.Time      `db:"date_paid"` // Nullable
	AuditFields
}

// TransactionItem is one line of a transaction, stored alongside its header
// and written in the same database transaction.
type TransactionItem struct {
	ItemID        string          `db:"item_id"`
	TransactionID string          `db:"transaction_id"`
	CategoryID    string          `db:"category_id"` // Nullable
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
}
