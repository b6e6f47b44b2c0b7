package models

// Merchant represents a merchant row.
type Merchant struct {
	MerchantID string `db:"merchant_id"`
	UserID     string `db:"user_id"`
	Name       string `db:"name"`
	Location   string `db:"location"`
	AuditFields
}
