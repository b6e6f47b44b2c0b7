package services

import (
	"context"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
)

// ServiceContainer holds all service facades for handler wiring.
type ServiceContainer struct {
	Account      AccountSvcFacade
	Transaction  TransactionSvcFacade
	Category     CategorySvcFacade
	Merchant     MerchantSvcFacade
	MonthlyTotal MonthlyTotalSvcFacade
}

// EventPublisher is the dispatch boundary for domain events. Publish is
// fire-and-forget from the caller's perspective: it returns once the event is
// accepted for delivery, not once handlers have run. Delivery is asynchronous
// and at-least-once; handler registration is composition-root wiring.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.TransactionCreated) error
}
