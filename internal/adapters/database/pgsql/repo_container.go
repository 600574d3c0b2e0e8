package pgsql

import (
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		TradeRepo:   newPgxTradeRepository(dbPool),
		PaymentRepo: newPgxPaymentRepository(dbPool),
		BankRepo:    newPgxBankRepository(dbPool),
		ExpenseRepo: newPgxExpenseRepository(dbPool),
	}
}
