package services

import (
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	"github.com/SscSPs/papermill_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// cache may be nil, in which case hierarchies are resolved from the repository every time.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cache portsrepo.HierarchyCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	accountOpts := []AccountServiceOption{WithCashAccountID(cfg.CashAccountID)}
	if cache != nil {
		accountOpts = append(accountOpts, WithHierarchyCache(cache))
	}
	container.Account = NewAccountService(repos.AccountRepo, accountOpts...)

	assembler := NewLedgerAssembler(DefaultPostingSources(repos), cfg.SourceTimeout)
	container.Ledger = NewLedgerService(container.Account, assembler, repos.BankRepo)

	container.Reporting = NewReportingService(
		container.Account,
		container.Ledger,
		WithReportConcurrency(cfg.ReportConcurrency),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade = (*accountService)(nil)
	_ portssvc.LedgerSvc        = (*ledgerService)(nil)
	_ portssvc.ReportingService = (*reportingService)(nil)
)
