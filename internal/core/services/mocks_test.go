package services_test

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/SscSPs/papermill_ledger/internal/apperrors"
	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListChildAccounts(ctx context.Context, parentIDs []string) ([]domain.Account, error) {
	args := m.Called(ctx, parentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockHierarchyCache is a mock type for the HierarchyCache interface
type MockHierarchyCache struct {
	mock.Mock
}

func (m *MockHierarchyCache) Get(ctx context.Context, accountID string, level domain.AccountLevel) (*domain.AccountScope, bool, error) {
	args := m.Called(ctx, accountID, level)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.AccountScope), args.Bool(1), args.Error(2)
}

func (m *MockHierarchyCache) Set(ctx context.Context, scope domain.AccountScope, level domain.AccountLevel) error {
	args := m.Called(ctx, scope, level)
	return args.Error(0)
}

func (m *MockHierarchyCache) Invalidate(ctx context.Context, accountIDs ...string) error {
	args := m.Called(ctx, accountIDs)
	return args.Error(0)
}

// MockTradeRepository is a mock type for the TradeReader interface
type MockTradeRepository struct {
	mock.Mock
}

func (m *MockTradeRepository) FindTradeEntries(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.TradeEntry, error) {
	args := m.Called(ctx, accountIDs, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TradeEntry), args.Error(1)
}

func (m *MockTradeRepository) FindTradeReturns(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.TradeReturn, error) {
	args := m.Called(ctx, accountIDs, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TradeReturn), args.Error(1)
}

// MockPaymentRepository is a mock type for the PaymentReader interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentsByAccounts(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.Payment, error) {
	args := m.Called(ctx, accountIDs, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByMode(ctx context.Context, mode domain.PaymentMode, rng domain.DateRange) ([]domain.Payment, error) {
	args := m.Called(ctx, mode, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockBankRepository is a mock type for the BankTransactionReader interface
type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) FindBankTransactions(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.BankTransaction, error) {
	args := m.Called(ctx, accountIDs, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankTransaction), args.Error(1)
}

// MockExpenseRepository is a mock type for the ExpenseReader interface
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenses(ctx context.Context, rng domain.DateRange) ([]domain.Expense, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// memoryStore is an in-memory mill database that filters by account set and date range the
// way the pgsql repositories do. It backs the end-to-end ledger tests.
type memoryStore struct {
	accounts map[string]domain.Account
	trades   []domain.TradeEntry
	returns  []domain.TradeReturn
	payments []domain.Payment
	bank     []domain.BankTransaction
	expenses []domain.Expense

	calls atomic.Int64
}

func newMemoryStore(accounts ...domain.Account) *memoryStore {
	s := &memoryStore{accounts: map[string]domain.Account{}}
	for _, a := range accounts {
		s.accounts[a.AccountID] = a
	}
	return s
}

func (s *memoryStore) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

func (s *memoryStore) FindAccountsByIDs(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	out := map[string]domain.Account{}
	for _, id := range accountIDs {
		if acc, ok := s.accounts[id]; ok {
			out[id] = acc
		}
	}
	return out, nil
}

func (s *memoryStore) ListAccounts(_ context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	var out []domain.Account
	for _, acc := range s.accounts {
		if accountType == nil || acc.AccountType == *accountType {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}

func (s *memoryStore) ListChildAccounts(_ context.Context, parentIDs []string) ([]domain.Account, error) {
	parents := toSet(parentIDs)
	var out []domain.Account
	for _, acc := range s.accounts {
		if parents[acc.ParentAccountID] {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}

func (s *memoryStore) FindTradeEntries(_ context.Context, accountIDs []string, rng domain.DateRange) ([]domain.TradeEntry, error) {
	s.calls.Add(1)
	ids := toSet(accountIDs)
	var out []domain.TradeEntry
	for _, e := range s.trades {
		if ids[e.AccountID] && rng.Contains(e.EntryDate) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memoryStore) FindTradeReturns(_ context.Context, accountIDs []string, rng domain.DateRange) ([]domain.TradeReturn, error) {
	s.calls.Add(1)
	ids := toSet(accountIDs)
	var out []domain.TradeReturn
	for _, r := range s.returns {
		if ids[r.AccountID] && rng.Contains(r.ReturnDate) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memoryStore) FindPaymentsByAccounts(_ context.Context, accountIDs []string, rng domain.DateRange) ([]domain.Payment, error) {
	s.calls.Add(1)
	ids := toSet(accountIDs)
	var out []domain.Payment
	for _, p := range s.payments {
		if ids[p.AccountID] && rng.Contains(p.PaymentDate) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memoryStore) FindPaymentsByMode(_ context.Context, mode domain.PaymentMode, rng domain.DateRange) ([]domain.Payment, error) {
	s.calls.Add(1)
	var out []domain.Payment
	for _, p := range s.payments {
		if p.PaymentMode == mode && rng.Contains(p.PaymentDate) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memoryStore) FindBankTransactions(_ context.Context, accountIDs []string, rng domain.DateRange) ([]domain.BankTransaction, error) {
	s.calls.Add(1)
	ids := toSet(accountIDs)
	var out []domain.BankTransaction
	for _, b := range s.bank {
		if (ids[b.BankAccountID] || ids[b.CounterpartyAccountID]) && rng.Contains(b.TransactionDate) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memoryStore) FindExpenses(_ context.Context, rng domain.DateRange) ([]domain.Expense, error) {
	s.calls.Add(1)
	var out []domain.Expense
	for _, e := range s.expenses {
		if rng.Contains(e.ExpenseDate) {
			out = append(out, e)
		}
	}
	return out, nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func repoProvider(s *memoryStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: s,
		TradeRepo:   s,
		PaymentRepo: s,
		BankRepo:    s,
		ExpenseRepo: s,
	}
}
