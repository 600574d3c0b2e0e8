package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/papermill_ledger/internal/apperrors"
	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo   portsrepo.AccountRepositoryFacade
	cache         portsrepo.HierarchyCache
	cashAccountID string
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithHierarchyCache makes the resolver consult cache before walking the chart of accounts.
func WithHierarchyCache(cache portsrepo.HierarchyCache) AccountServiceOption {
	return func(s *accountService) {
		s.cache = cache
	}
}

// WithCashAccountID designates the account that cash payments and expenses post to.
// Without it the lowest-id CASH account of the whole chart is used.
func WithCashAccountID(accountID string) AccountServiceOption {
	return func(s *accountService) {
		s.cashAccountID = accountID
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	if accountType != nil && !accountType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, *accountType)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, accountType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) ListChildren(ctx context.Context, accountID string) ([]domain.Account, error) {
	if _, err := s.GetAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	children, err := s.accountRepo.ListChildAccounts(ctx, []string{accountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list child accounts", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list children of %s: %w", accountID, err)
	}
	return children, nil
}

// Resolve expands an account into the set of accounts whose postings make up its ledger:
// a leaf resolves to itself, a sub-group to itself plus its leaves, and a group to itself
// plus every sub-group and leaf below it.
//
// The account's stored level is authoritative. Passing LevelUnspecified uses it as is; a
// level that disagrees with the stored one is rejected rather than guessed.
func (s *accountService) Resolve(ctx context.Context, accountID string, level domain.AccountLevel) (*domain.AccountScope, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	if level != domain.LevelUnspecified && !level.Valid() {
		return nil, fmt.Errorf("%w: level must be 1, 2 or 3, got %d", apperrors.ErrValidation, level)
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, accountID, level)
		if err != nil {
			s.LogWarn(ctx, "Hierarchy cache read failed, resolving from repository",
				slog.String("account_id", accountID), slog.String("error", err.Error()))
		} else if ok {
			return cached, nil
		}
	}

	root, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account %s: %w", accountID, err)
	}
	if !root.Level.Valid() {
		return nil, fmt.Errorf("%w: account %s has no stored level", apperrors.ErrAmbiguousLevel, accountID)
	}
	if level != domain.LevelUnspecified && level != root.Level {
		return nil, fmt.Errorf("%w: account %s is level %d, requested level %d", apperrors.ErrValidation, accountID, root.Level, level)
	}

	accounts := map[string]domain.Account{root.AccountID: *root}
	frontier := []string{root.AccountID}
	for depth := root.Level; depth < domain.LevelLeaf && len(frontier) > 0; depth++ {
		children, err := s.accountRepo.ListChildAccounts(ctx, frontier)
		if err != nil {
			s.LogError(ctx, err, "Failed to list child accounts", slog.String("account_id", accountID))
			return nil, fmt.Errorf("failed to resolve descendants of %s: %w", accountID, err)
		}
		next := make([]string, 0, len(children))
		for _, child := range children {
			if child.Level != depth+1 {
				return nil, fmt.Errorf("%w: account %s under level-%d parent %s is stored as level %d",
					apperrors.ErrAmbiguousLevel, child.AccountID, depth, child.ParentAccountID, child.Level)
			}
			accounts[child.AccountID] = child
			next = append(next, child.AccountID)
		}
		frontier = next
	}

	scope, err := s.buildScope(ctx, *root, accounts)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, scope, level); err != nil {
			s.LogWarn(ctx, "Failed to cache account hierarchy",
				slog.String("account_id", accountID), slog.String("error", err.Error()))
		}
	}

	s.LogDebug(ctx, "Resolved account hierarchy",
		slog.String("account_id", accountID),
		slog.Int("level", int(root.Level)),
		slog.Int("account_count", len(scope.AccountIDs)))
	return &scope, nil
}

func (s *accountService) buildScope(ctx context.Context, root domain.Account, accounts map[string]domain.Account) (domain.AccountScope, error) {
	ids := make([]string, 0, len(accounts))
	hasCash := false
	for id, acc := range accounts {
		ids = append(ids, id)
		if acc.AccountType == domain.Cash || id == s.cashAccountID {
			hasCash = true
		}
	}
	sort.Strings(ids)

	scope := domain.AccountScope{
		Root:        root,
		Accounts:    accounts,
		AccountIDs:  ids,
		IsAggregate: root.Level != domain.LevelLeaf,
	}
	if !hasCash {
		return scope, nil
	}

	cashID, err := s.chartCashAccountID(ctx)
	if err != nil {
		return domain.AccountScope{}, err
	}
	if _, ok := accounts[cashID]; ok {
		scope.CashAccountID = cashID
	}
	return scope, nil
}

// chartCashAccountID names the single account that carries the cash side of CASH-mode
// payments and expenses. Every scope agrees on it, so a cash movement lands in one ledger.
func (s *accountService) chartCashAccountID(ctx context.Context) (string, error) {
	if s.cashAccountID != "" {
		return s.cashAccountID, nil
	}
	cashType := domain.Cash
	books, err := s.accountRepo.ListAccounts(ctx, &cashType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash accounts")
		return "", fmt.Errorf("failed to determine cash account: %w", err)
	}
	cashID := ""
	for _, acc := range books {
		if cashID == "" || acc.AccountID < cashID {
			cashID = acc.AccountID
		}
	}
	return cashID, nil
}

// InvalidateAccount drops cached scopes rooted at the account or any of its ancestors,
// since all of them include the account.
func (s *accountService) InvalidateAccount(ctx context.Context, accountID string) error {
	if s.cache == nil {
		return nil
	}

	ids := []string{accountID}
	current := accountID
	for i := 0; i < int(domain.LevelLeaf); i++ {
		acc, err := s.accountRepo.FindAccountByID(ctx, current)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				break
			}
			return fmt.Errorf("failed to look up ancestors of %s: %w", accountID, err)
		}
		if acc.ParentAccountID == "" {
			break
		}
		ids = append(ids, acc.ParentAccountID)
		current = acc.ParentAccountID
	}

	if err := s.cache.Invalidate(ctx, ids...); err != nil {
		s.LogError(ctx, err, "Failed to invalidate hierarchy cache", slog.Any("account_ids", ids))
		return fmt.Errorf("failed to invalidate hierarchy cache: %w", err)
	}
	s.LogInfo(ctx, "Invalidated hierarchy cache", slog.Any("account_ids", ids))
	return nil
}
