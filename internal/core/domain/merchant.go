package domain

import (
	"fmt"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
	"github.com/google/uuid"
)

// Merchant is the payee of a transaction, referenced by id from transaction
// line rollups.
type Merchant struct {
	MerchantID string `json:"merchantID"`
	UserID     string `json:"userID"`
	Name       string `json:"name"`
	Location   string `json:"location,omitempty"`
	AuditFields
}

// NewMerchant creates a merchant for the given user.
func NewMerchant(userID, name, location string, now time.Time) (*Merchant, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id must not be empty", apperrors.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: merchant name must not be empty", apperrors.ErrValidation)
	}
	return &Merchant{
		MerchantID: uuid.NewString(),
		UserID:     userID,
		Name:       name,
		Location:   location,
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}
