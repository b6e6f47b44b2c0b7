package services

import (
	portsrepo "github.com/Habanerio/Xpnss-sub003/internal/core/ports/repositories"
	portssvc "github.com/Habanerio/Xpnss-sub003/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher portssvc.EventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.AccountRepo,
		publisher,
	)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Merchant = NewMerchantService(repos.MerchantRepo)
	container.MonthlyTotal = NewMonthlyTotalService(repos.MonthlyTotalRepo)

	return container
}
