package domain

import (
	"fmt"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType identifies one of the closed set of account variants.
// It is immutable once an account has been created.
type AccountType string

const (
	AccountTypeCash         AccountType = "CASH"
	AccountTypeChecking     AccountType = "CHECKING"
	AccountTypeSavings      AccountType = "SAVINGS"
	AccountTypeCreditCard   AccountType = "CREDIT_CARD"
	AccountTypeLineOfCredit AccountType = "LINE_OF_CREDIT"
)

// AccountTypes lists every supported account type.
var AccountTypes = []AccountType{
	AccountTypeCash,
	AccountTypeChecking,
	AccountTypeSavings,
	AccountTypeCreditCard,
	AccountTypeLineOfCredit,
}

// ParseAccountType validates a raw string against the closed type set.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(s)
	switch t {
	case AccountTypeCash, AccountTypeChecking, AccountTypeSavings,
		AccountTypeCreditCard, AccountTypeLineOfCredit:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, s)
}

// IsLiability reports whether the type represents money the user owes.
// Liability accounts invert the balance direction of credit/debit movements.
func (t AccountType) IsLiability() bool {
	return t == AccountTypeCreditCard || t == AccountTypeLineOfCredit
}

// SupportsCreditLimit reports whether accounts of this type carry a credit limit.
func (t AccountType) SupportsCreditLimit() bool {
	return t == AccountTypeCreditCard || t == AccountTypeLineOfCredit
}

// SupportsInterestRate reports whether accounts of this type carry an interest rate.
func (t AccountType) SupportsInterestRate() bool {
	return t == AccountTypeSavings || t == AccountTypeCreditCard || t == AccountTypeLineOfCredit
}

// SupportsOverdraft reports whether accounts of this type carry an overdraft amount.
func (t AccountType) SupportsOverdraft() bool {
	return t == AccountTypeChecking
}

// MovementKind classifies a balance movement independent of account type.
type MovementKind string

const (
	// CreditMovement is money moving in the account's favor: a deposit into an
	// asset account or a payment against a liability account.
	CreditMovement MovementKind = "CREDIT"
	// DebitMovement is money moving against the account's favor: a withdrawal
	// from an asset account or a charge on a liability account.
	DebitMovement MovementKind = "DEBIT"
)

// movementSign is the balance-direction table: the multiplier applied to a
// movement amount before it is added to the stored balance.
//
// Asset accounts:      credit +1, debit -1
// Liability accounts:  credit -1 (payment reduces debt), debit +1 (charge grows debt)
func movementSign(accountType AccountType, kind MovementKind) (int64, error) {
	switch accountType {
	case AccountTypeCash, AccountTypeChecking, AccountTypeSavings:
		if kind == CreditMovement {
			return 1, nil
		}
		return -1, nil
	case AccountTypeCreditCard, AccountTypeLineOfCredit:
		if kind == CreditMovement {
			return -1, nil
		}
		return 1, nil
	}
	return 0, fmt.Errorf("unknown account type %q", accountType)
}

// AdjustmentEntry records a manual correction to a capability value, distinct
// from transaction-driven balance changes.
type AdjustmentEntry struct {
	AdjustmentID string    `json:"adjustmentID"`
	AccountID    string    `json:"accountID"`
	Field        string    `json:"field"`
	OldValue     string    `json:"oldValue"`
	NewValue     string    `json:"newValue"`
	Reason       string    `json:"reason"`
	DateChanged  time.Time `json:"dateChanged"`
}

// Account is a financial account owned by one user. The balance is only ever
// mutated through the movement operations below; the account type decides
// the direction each movement applies.
type Account struct {
	AccountID    string      `json:"accountID"`
	UserID       string      `json:"userID"`
	AccountType  AccountType `json:"accountType"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	DisplayColor string      `json:"displayColor"`
	Balance      Money       `json:"balance"`

	// Capability values; meaningful only when the type supports them.
	CreditLimit     Money           `json:"creditLimit"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	OverdraftAmount Money           `json:"overdraftAmount"`

	DateClosed  *time.Time `json:"dateClosed,omitempty"`
	DateDeleted *time.Time `json:"dateDeleted,omitempty"`
	AuditFields

	// Version is the optimistic-concurrency token maintained by the store.
	// Zero means the account has never been persisted.
	Version int64 `json:"version"`

	adjustments []AdjustmentEntry
}

// NewAccountParams carries the inputs to NewAccount. Capability values left
// zero are simply unset; a non-zero value on an unsupporting type is rejected.
type NewAccountParams struct {
	AccountID       string
	UserID          string
	AccountType     AccountType
	Name            string
	Description     string
	DisplayColor    string
	Balance         Money
	CreditLimit     Money
	InterestRate    decimal.Decimal
	OverdraftAmount Money
}

// NewAccount creates a transient account with a validated starting state.
func NewAccount(p NewAccountParams, now time.Time) (*Account, error) {
	verr := &apperrors.ValidationError{}
	if p.UserID == "" {
		verr.AddField("userID", "must not be empty")
	}
	if p.Name == "" {
		verr.AddField("name", "must not be empty")
	}
	if _, err := ParseAccountType(string(p.AccountType)); err != nil {
		verr.AddField("accountType", fmt.Sprintf("unknown account type %q", p.AccountType))
	}
	if p.Balance.IsNegative() {
		verr.AddField("balance", "starting balance must not be negative")
	}
	if verr.HasFields() {
		return nil, verr
	}

	if !p.CreditLimit.IsZero() && !p.AccountType.SupportsCreditLimit() {
		return nil, capabilityError(p.AccountType, "credit limit")
	}
	if !p.InterestRate.IsZero() && !p.AccountType.SupportsInterestRate() {
		return nil, capabilityError(p.AccountType, "interest rate")
	}
	if !p.OverdraftAmount.IsZero() && !p.AccountType.SupportsOverdraft() {
		return nil, capabilityError(p.AccountType, "overdraft amount")
	}
	if p.CreditLimit.IsNegative() {
		return nil, apperrors.NewValidationError(apperrors.FieldError{Field: "creditLimit", Message: "must not be negative"})
	}
	if p.InterestRate.IsNegative() || p.InterestRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, apperrors.NewValidationError(apperrors.FieldError{Field: "interestRate", Message: "must be between 0 and 100"})
	}
	if p.OverdraftAmount.IsNegative() {
		return nil, apperrors.NewValidationError(apperrors.FieldError{Field: "overdraftAmount", Message: "must not be negative"})
	}

	return &Account{
		AccountID:       p.AccountID,
		UserID:          p.UserID,
		AccountType:     p.AccountType,
		Name:            p.Name,
		Description:     p.Description,
		DisplayColor:    p.DisplayColor,
		Balance:         p.Balance,
		CreditLimit:     p.CreditLimit,
		InterestRate:    p.InterestRate,
		OverdraftAmount: p.OverdraftAmount,
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

// IsTransient reports whether the account has never been persisted.
func (a *Account) IsTransient() bool {
	return a.Version == 0
}

// IsClosed reports whether the account has been closed.
func (a *Account) IsClosed() bool {
	return a.DateClosed != nil
}

// IsDeleted reports whether the account has been soft-deleted.
func (a *Account) IsDeleted() bool {
	return a.DateDeleted != nil
}

// ApplyCreditMovement records money moving in the account's favor on the given
// date. The stored balance moves in the direction the account type dictates.
func (a *Account) ApplyCreditMovement(date time.Time, amount Money) error {
	return a.applyMovement(date, CreditMovement, amount)
}

// ApplyDebitMovement records money moving against the account's favor.
func (a *Account) ApplyDebitMovement(date time.Time, amount Money) error {
	return a.applyMovement(date, DebitMovement, amount)
}

// Deposit records money moving into the account's favor.
func (a *Account) Deposit(date time.Time, amount Money) error {
	return a.ApplyCreditMovement(date, amount)
}

// Withdraw records money moving out of the account's favor.
func (a *Account) Withdraw(date time.Time, amount Money) error {
	return a.ApplyDebitMovement(date, amount)
}

func (a *Account) applyMovement(date time.Time, kind MovementKind, amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: movement amount must not be negative, got %s", apperrors.ErrValidation, amount)
	}
	sign, err := movementSign(a.AccountType, kind)
	if err != nil {
		return err
	}
	if sign < 0 {
		a.Balance = a.Balance.Sub(amount)
	} else {
		a.Balance = a.Balance.Add(amount)
	}
	a.Touch(date)
	return nil
}

// IsOverLimit reports whether a credit-limit account's debt exceeds its limit.
// It is informational only; movements are never blocked by it.
func (a *Account) IsOverLimit() bool {
	if !a.AccountType.SupportsCreditLimit() {
		return false
	}
	return a.Balance.GreaterThan(a.CreditLimit)
}

// UpdateDetails changes non-financial metadata only.
func (a *Account) UpdateDetails(name, description, displayColor string, now time.Time) error {
	if name == "" {
		return fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}
	a.Name = name
	a.Description = description
	a.DisplayColor = displayColor
	a.Touch(now)
	return nil
}

// AdjustCreditLimit is a manual, logged correction of the credit limit.
func (a *Account) AdjustCreditLimit(newValue Money, dateChanged time.Time, reason string) error {
	if !a.AccountType.SupportsCreditLimit() {
		return capabilityError(a.AccountType, "credit limit")
	}
	if newValue.IsNegative() {
		return fmt.Errorf("%w: credit limit must not be negative", apperrors.ErrValidation)
	}
	a.recordAdjustment("credit_limit", a.CreditLimit.String(), newValue.String(), reason, dateChanged)
	a.CreditLimit = newValue
	a.Touch(dateChanged)
	return nil
}

// AdjustInterestRate is a manual, logged correction of the interest rate.
func (a *Account) AdjustInterestRate(newValue decimal.Decimal, dateChanged time.Time, reason string) error {
	if !a.AccountType.SupportsInterestRate() {
		return capabilityError(a.AccountType, "interest rate")
	}
	if newValue.IsNegative() || newValue.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: interest rate must be between 0 and 100", apperrors.ErrValidation)
	}
	a.recordAdjustment("interest_rate", a.InterestRate.String(), newValue.String(), reason, dateChanged)
	a.InterestRate = newValue
	a.Touch(dateChanged)
	return nil
}

// AdjustOverdraftAmount is a manual, logged correction of the overdraft amount.
func (a *Account) AdjustOverdraftAmount(newValue Money, dateChanged time.Time, reason string) error {
	if !a.AccountType.SupportsOverdraft() {
		return capabilityError(a.AccountType, "overdraft amount")
	}
	if newValue.IsNegative() {
		return fmt.Errorf("%w: overdraft amount must not be negative", apperrors.ErrValidation)
	}
	a.recordAdjustment("overdraft_amount", a.OverdraftAmount.String(), newValue.String(), reason, dateChanged)
	a.OverdraftAmount = newValue
	a.Touch(dateChanged)
	return nil
}

// Close marks the account closed. Closed accounts remain readable and keep
// their balance; the service layer stops routing new transactions to them.
func (a *Account) Close(date time.Time) error {
	if a.IsClosed() {
		return fmt.Errorf("%w: account %s is already closed", apperrors.ErrValidation, a.AccountID)
	}
	a.DateClosed = &date
	a.Touch(date)
	return nil
}

// MarkDeleted soft-deletes the account. Accounts referenced by transactions
// are never physically removed.
func (a *Account) MarkDeleted(date time.Time) {
	a.DateDeleted = &date
	a.Touch(date)
}

// PendingAdjustments returns manual corrections recorded since the aggregate
// was loaded, for persistence alongside the account.
func (a *Account) PendingAdjustments() []AdjustmentEntry {
	return a.adjustments
}

// ClearPendingAdjustments drops recorded corrections after they are persisted.
func (a *Account) ClearPendingAdjustments() {
	a.adjustments = nil
}

func (a *Account) recordAdjustment(field, oldValue, newValue, reason string, dateChanged time.Time) {
	a.adjustments = append(a.adjustments, AdjustmentEntry{
		AdjustmentID: uuid.NewString(),
		AccountID:    a.AccountID,
		Field:        field,
		OldValue:     oldValue,
		NewValue:     newValue,
		Reason:       reason,
		DateChanged:  dateChanged,
	})
}

func capabilityError(t AccountType, capability string) error {
	return fmt.Errorf("%w: account type %s does not support %s", apperrors.ErrCapabilityNotSupported, t, capability)
}
