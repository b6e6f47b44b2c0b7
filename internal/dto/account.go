package dto

import (
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Capability fields are only valid on account types that support them.
type CreateAccountRequest struct {
	Name            string           `json:"name" binding:"required"`
	AccountType     string           `json:"accountType" binding:"required,oneof=CASH CHECKING SAVINGS CREDIT_CARD LINE_OF_CREDIT"`
	Description     string           `json:"description"`
	DisplayColor    string           `json:"displayColor"`
	Balance         *decimal.Decimal `json:"balance"`
	CreditLimit     *decimal.Decimal `json:"creditLimit"`
	InterestRate    *decimal.Decimal `json:"interestRate"`
	OverdraftAmount *decimal.Decimal `json:"overdraftAmount"`
}

// UpdateAccountRequest defines the metadata-only update path.
type UpdateAccountRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayColor string `json:"displayColor"`
}

// AdjustValueRequest carries a manual capability correction.
type AdjustValueRequest struct {
	NewValue    decimal.Decimal `json:"newValue" binding:"required"`
	DateChanged *time.Time      `json:"dateChanged"`
	Reason      string          `json:"reason"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string          `json:"accountID"`
	UserID          string          `json:"userID"`
	AccountType     string          `json:"accountType"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DisplayColor    string          `json:"displayColor"`
	Balance         decimal.Decimal `json:"balance"`
	CreditLimit     *decimal.Decimal `json:"creditLimit,omitempty"`
	InterestRate    *decimal.Decimal `json:"interestRate,omitempty"`
	OverdraftAmount *decimal.Decimal `json:"overdraftAmount,omitempty"`
	IsOverLimit     bool            `json:"isOverLimit"`
	DateClosed      *time.Time      `json:"dateClosed,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO. Capability
// fields are omitted on variants that lack them.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID:     acc.AccountID,
		UserID:        acc.UserID,
		AccountType:   string(acc.AccountType),
		Name:          acc.Name,
		Description:   acc.Description,
		DisplayColor:  acc.DisplayColor,
		Balance:       acc.Balance.Decimal(),
		IsOverLimit:   acc.IsOverLimit(),
		DateClosed:    acc.DateClosed,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
	if acc.AccountType.SupportsCreditLimit() {
		v := acc.CreditLimit.Decimal()
		resp.CreditLimit = &v
	}
	if acc.AccountType.SupportsInterestRate() {
		v := acc.InterestRate
		resp.InterestRate = &v
	}
	if acc.AccountType.SupportsOverdraft() {
		v := acc.OverdraftAmount.Decimal()
		resp.OverdraftAmount = &v
	}
	return resp
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
