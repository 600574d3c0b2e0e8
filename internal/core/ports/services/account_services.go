package services

import (
	"context"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
)

// AccountReaderSvc is the account directory consumed by ledger and report callers.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts, optionally filtered by type.
	ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error)

	// ListChildren retrieves the direct children of an account.
	ListChildren(ctx context.Context, accountID string) ([]domain.Account, error)
}

// HierarchyResolverSvc expands an account into the set of accounts its ledger covers.
type HierarchyResolverSvc interface {
	Resolve(ctx context.Context, accountID string, level domain.AccountLevel) (*domain.AccountScope, error)
}

// AccountCacheInvalidatorSvc drops cached hierarchy data after accounts change.
type AccountCacheInvalidatorSvc interface {
	InvalidateAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	HierarchyResolverSvc
	AccountCacheInvalidatorSvc
}
