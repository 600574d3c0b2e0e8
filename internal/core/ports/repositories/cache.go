package repositories

import (
	"context"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
)

// HierarchyCache stores resolved account scopes keyed by root account and level.
// A miss is reported with ok=false and a nil error.
type HierarchyCache interface {
	Get(ctx context.Context, accountID string, level domain.AccountLevel) (scope *domain.AccountScope, ok bool, err error)
	Set(ctx context.Context, scope domain.AccountScope, level domain.AccountLevel) error
	// Invalidate drops every cached scope rooted at one of the given accounts.
	Invalidate(ctx context.Context, accountIDs ...string) error
}
