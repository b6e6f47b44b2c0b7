package domain

import (
	"fmt"
	"time"

	"github.com/Habanerio/Xpnss-sub003/internal/apperrors"
)

// EntityType identifies which kind of entity a monthly rollup is kept for.
type EntityType string

const (
	EntityTypeAccount  EntityType = "ACCOUNT"
	EntityTypeCategory EntityType = "CATEGORY"
	EntityTypeMerchant EntityType = "MERCHANT"
)

// ParseEntityType validates a raw string against the closed entity-type set.
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(s)
	switch t {
	case EntityTypeAccount, EntityTypeCategory, EntityTypeMerchant:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown entity type %q", apperrors.ErrValidation, s)
}

// YearMonth is a calendar month used as a rollup grain and range boundary.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// YearMonthOf returns the calendar month of t in UTC.
func YearMonthOf(t time.Time) YearMonth {
	u := t.UTC()
	return YearMonth{Year: u.Year(), Month: int(u.Month())}
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// After reports whether ym is strictly later than other.
func (ym YearMonth) After(other YearMonth) bool {
	return other.Before(ym)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// MonthlyTotal is a derived per-month rollup of credit/debit counts and
// amounts for one entity. Grain: (UserID, EntityID, EntityType, Year, Month) —
// exactly one row per key, maintained by upsert. It can always be rebuilt from
// the transaction ledger.
type MonthlyTotal struct {
	UserID            string     `json:"userID"`
	EntityID          string     `json:"entityID"`
	EntityType        EntityType `json:"entityType"`
	Year              int        `json:"year"`
	Month             int        `json:"month"`
	CreditCount       int        `json:"creditCount"`
	CreditTotalAmount Money      `json:"creditTotalAmount"`
	DebitCount        int        `json:"debitCount"`
	DebitTotalAmount  Money      `json:"debitTotalAmount"`
	AuditFields
}

// NewMonthlyTotal creates a zeroed rollup row for the given grain key.
func NewMonthlyTotal(userID, entityID string, entityType EntityType, year, month int, now time.Time) (*MonthlyTotal, error) {
	if userID == "" || entityID == "" {
		return nil, fmt.Errorf("%w: user id and entity id must not be empty", apperrors.ErrValidation)
	}
	if _, err := ParseEntityType(string(entityType)); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12, got %d", apperrors.ErrValidation, month)
	}
	return &MonthlyTotal{
		UserID:            userID,
		EntityID:          entityID,
		EntityType:        entityType,
		Year:              year,
		Month:             month,
		CreditTotalAmount: ZeroMoney(),
		DebitTotalAmount:  ZeroMoney(),
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

// ApplyMovement increments the matching count and total.
func (mt *MonthlyTotal) ApplyMovement(isCredit bool, amount Money, now time.Time) {
	if isCredit {
		mt.CreditCount++
		mt.CreditTotalAmount = mt.CreditTotalAmount.Add(amount)
	} else {
		mt.DebitCount++
		mt.DebitTotalAmount = mt.DebitTotalAmount.Add(amount)
	}
	mt.Touch(now)
}
