package domain

import "time"

// TransactionCreated is the notification emitted when a transaction has been
// recorded. It is a trigger for derived updates, not the system of record: the
// persisted Transaction stays the durable source of truth and handlers may see
// the same event more than once.
type TransactionCreated struct {
	EventID         string          `json:"eventID"`
	UserID          string          `json:"userID"`
	AccountID       string          `json:"accountID"`
	TransactionID   string          `json:"transactionID"`
	MerchantID      string          `json:"merchantID,omitempty"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          Money           `json:"amount"`
	// CategoryAmounts is the per-category split of the transaction's items,
	// keyed by category id, so rollup handlers need not reload the aggregate.
	CategoryAmounts      map[string]Money `json:"categoryAmounts"`
	DateOfTransactionUTC time.Time        `json:"dateOfTransactionUtc"`
}

// EventName identifies the event for dispatcher routing and logging.
func (TransactionCreated) EventName() string {
	return "transaction.created"
}
