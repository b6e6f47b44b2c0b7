package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Touch stamps the last-updated time.
func (a *AuditFields) Touch(now time.Time) {
	a.LastUpdatedAt = now
}
