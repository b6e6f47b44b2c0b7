package dto

import (
	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTotalsParams defines query parameters for rollup queries.
type ListTotalsParams struct {
	EntityID   string `form:"entityID"`
	Year       int    `form:"year"`
	StartYear  int    `form:"startYear"`
	StartMonth int    `form:"startMonth"`
	EndYear    int    `form:"endYear"`
	EndMonth   int    `form:"endMonth"`
}

// MonthlyTotalResponse defines the data returned for one rollup row.
type MonthlyTotalResponse struct {
	UserID            string          `json:"userID"`
	EntityID          string          `json:"entityID"`
	EntityType        string          `json:"entityType"`
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	CreditCount       int             `json:"creditCount"`
	CreditTotalAmount decimal.Decimal `json:"creditTotalAmount"`
	DebitCount        int             `json:"debitCount"`
	DebitTotalAmount  decimal.Decimal `json:"debitTotalAmount"`
}

// ToMonthlyTotalResponse converts a domain.MonthlyTotal to its response DTO.
func ToMonthlyTotalResponse(mt *domain.MonthlyTotal) MonthlyTotalResponse {
	return MonthlyTotalResponse{
		UserID:            mt.UserID,
		EntityID:          mt.EntityID,
		EntityType:        string(mt.EntityType),
		Year:              mt.Year,
		Month:             mt.Month,
		CreditCount:       mt.CreditCount,
		CreditTotalAmount: mt.CreditTotalAmount.Decimal(),
		DebitCount:        mt.DebitCount,
		DebitTotalAmount:  mt.DebitTotalAmount.Decimal(),
	}
}

// ToListMonthlyTotalResponse converts a slice of rollups to response DTOs.
func ToListMonthlyTotalResponse(totals []domain.MonthlyTotal) []MonthlyTotalResponse {
	res := make([]MonthlyTotalResponse, len(totals))
	for i := range totals {
		res[i] = ToMonthlyTotalResponse(&totals[i])
	}
	return res
}
