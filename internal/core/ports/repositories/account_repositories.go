package repositories

import (
	"context"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves all accounts, optionally restricted to one account type.
	ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error)

	// ListChildAccounts retrieves the direct children of the given parent accounts.
	ListChildAccounts(ctx context.Context, parentIDs []string) ([]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
// Accounts are maintained by the account-management forms; this service only reads them.
type AccountRepositoryFacade interface {
	AccountReader
}
