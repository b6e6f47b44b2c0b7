package models

import "github.com/shopspring/decimal"

// MonthlyTotal is one derived rollup row. The primary key is
// (user_id, entity_id, entity_type, year, month); increments land through a
// single atomic upsert per key.
type MonthlyTotal struct {
	UserID            string          `db:"user_id"`
	EntityID          string          `db:"entity_id"`
	EntityType        string          `db:"entity_type"`
	Year              int             `db:"year"`
	Month             int             `db:"month"`
	CreditCount       int             `db:"credit_count"`
	CreditTotalAmount decimal.Decimal `db:"credit_total_amount"`
	DebitCount        int             `db:"debit_count"`
	DebitTotalAmount  decimal.Decimal `db:"debit_total_amount"`
	AuditFields
}
