package dto

import (
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
)

// CreateMerchantRequest defines the data needed to create a merchant.
type CreateMerchantRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// MerchantResponse defines the data returned for a merchant.
type MerchantResponse struct {
	MerchantID    string    `json:"merchantID"`
	UserID        string    `json:"userID"`
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToMerchantResponse converts a domain.Merchant to its response DTO.
func ToMerchantResponse(m *domain.Merchant) MerchantResponse {
	return MerchantResponse{
		MerchantID:    m.MerchantID,
		UserID:        m.UserID,
		Name:          m.Name,
		Location:      m.Location,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToListMerchantResponse converts a slice of merchants to response DTOs.
func ToListMerchantResponse(merchants []domain.Merchant) []MerchantResponse {
	res := make([]MerchantResponse, len(merchants))
	for i := range merchants {
		res[i] = ToMerchantResponse(&merchants[i])
	}
	return res
}
