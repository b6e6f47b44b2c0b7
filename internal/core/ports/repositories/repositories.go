package repositories

// RepositoryProvider aggregates every repository implementation an adapter
// provides, for composition-root wiring.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	CategoryRepo     CategoryRepositoryFacade
	MerchantRepo     MerchantRepositoryFacade
	MonthlyTotalRepo MonthlyTotalRepositoryFacade
}
