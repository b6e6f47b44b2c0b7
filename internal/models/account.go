package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a financial account row. Capability columns are zero on
// variants that lack the capability; the domain layer enforces which is which.
type Account struct {
	AccountID       string          `db:"account_id"`
	UserID          string          `db:"user_id"`
	AccountType     string          `db:"account_type"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	DisplayColor    string          `db:"display_color"`
	Balance         decimal.Decimal `db:"balance"`
	CreditLimit     decimal.Decimal `db:"credit_limit"`
	InterestRate    decimal.Decimal `db:"interest_rate"`
	OverdraftAmount decimal.Decimal `db:"overdraft_amount"`
	DateClosed      *time.Time      `db:"date_closed"`   // Nullable
	DateDeleted     *time.Time      `db:"date_deleted"`  // Nullable
	Version         int64           `db:"version"`
	AuditFields
}

// AccountAdjustment records a manual capability correction, kept as an audit
// trail separate from transactions.
type AccountAdjustment struct {
	AdjustmentID string    `db:"adjustment_id"`
	AccountID    string    `db:"account_id"`
	Field        string    `db:"field"`
	OldValue     string    `db:"old_value"`
	NewValue     string    `db:"new_value"`
	Reason       string    `db:"reason"`
	DateChanged  time.Time `db:"date_changed"`
}
