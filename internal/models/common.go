package models

import "time"

// AuditFields carries the creation/update timestamps persisted on every row.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
