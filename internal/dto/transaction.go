package dto

import (
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionItemRequest is one line item of a new transaction.
type CreateTransactionItemRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	CategoryID  string          `json:"categoryID"`
	Description string          `json:"description"`
}

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	AccountID       string                         `json:"accountID" binding:"required"`
	TransactionType string                         `json:"transactionType" binding:"required,oneof=CHARGE CREDIT DEPOSIT INCOME PURCHASE REFUND TRANSFER WITHDRAWAL"`
	Description     string                         `json:"description"`
	MerchantID      string                         `json:"merchantID"`
	Items           []CreateTransactionItemRequest `json:"items" binding:"required,min=1,dive"`
	TransactionDate time.Time                      `json:"transactionDate" binding:"required"`
}

// UpdateTransactionRequest is the narrow amendment path: description and date
// only, never amounts.
type UpdateTransactionRequest struct {
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transactionDate" binding:"required"`
}

// RecordPaymentRequest records a payment against a transaction.
type RecordPaymentRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	DatePaid *time.Time      `json:"datePaid"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID string     `form:"accountID"`
	FromDate  *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate    *time.Time `form:"toDate" time_format:"2006-01-02"`
}

// TransactionItemResponse is one line item of a transaction response.
type TransactionItemResponse struct {
	ItemID      string          `json:"itemID"`
	CategoryID  string          `json:"categoryID,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                    `json:"transactionID"`
	UserID          string                    `json:"userID"`
	AccountID       string                    `json:"accountID"`
	TransactionType string                    `json:"transactionType"`
	Description     string                    `json:"description,omitempty"`
	MerchantID      string                    `json:"merchantID,omitempty"`
	Items           []TransactionItemResponse `json:"items"`
	TransactionDate time.Time                 `json:"transactionDate"`
	TotalAmount     decimal.Decimal           `json:"totalAmount"`
	TotalPaid       decimal.Decimal           `json:"totalPaid"`
	Owing           decimal.Decimal           `json:"owing"`
	DatePaid        *time.Time                `json:"datePaid,omitempty"`
	CreatedAt       time.Time                 `json:"createdAt"`
	LastUpdatedAt   time.Time                 `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	items := make([]TransactionItemResponse, len(txn.Items))
	for i, item := range txn.Items {
		items[i] = TransactionItemResponse{
			ItemID:      item.ItemID,
			CategoryID:  item.CategoryID,
			Description: item.Description,
			Amount:      item.Amount.Decimal(),
		}
	}
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		UserID:          txn.UserID,
		AccountID:       txn.AccountID,
		TransactionType: string(txn.TransactionType),
		Description:     txn.Description,
		MerchantID:      txn.MerchantID,
		Items:           items,
		TransactionDate: txn.TransactionDate,
		TotalAmount:     txn.TotalAmount().Decimal(),
		TotalPaid:       txn.TotalPaid.Decimal(),
		Owing:           txn.Owing().Decimal(),
		DatePaid:        txn.DatePaid,
		CreatedAt:       txn.CreatedAt,
		LastUpdatedAt:   txn.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
