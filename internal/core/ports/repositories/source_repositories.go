package repositories

import (
	"context"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
)

// TradeReader reads priced gate entries and gate returns.
type TradeReader interface {
	// FindTradeEntries returns priced PURCHASE_IN / SALE_OUT entries of the given accounts.
	FindTradeEntries(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.TradeEntry, error)

	// FindTradeReturns returns gate returns whose original entry belongs to the given accounts.
	FindTradeReturns(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.TradeReturn, error)
}

// PaymentReader reads the payments table.
type PaymentReader interface {
	// FindPaymentsByAccounts returns payments of every mode made to or by the given accounts.
	FindPaymentsByAccounts(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.Payment, error)

	// FindPaymentsByMode returns payments of one mode regardless of counterparty.
	FindPaymentsByMode(ctx context.Context, mode domain.PaymentMode, rng domain.DateRange) ([]domain.Payment, error)
}

// BankTransactionReader reads the bank_transactions table.
type BankTransactionReader interface {
	// FindBankTransactions returns rows whose bank account or counterparty is one of the given accounts.
	FindBankTransactions(ctx context.Context, accountIDs []string, rng domain.DateRange) ([]domain.BankTransaction, error)
}

// ExpenseReader reads the expenses table.
type ExpenseReader interface {
	FindExpenses(ctx context.Context, rng domain.DateRange) ([]domain.Expense, error)
}
