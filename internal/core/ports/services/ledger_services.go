package services

import (
	"context"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
)

// PostingSource turns rows of one domain table into normalized postings.
type PostingSource interface {
	Name() domain.SourceName
	Fetch(ctx context.Context, scope domain.AccountScope, rng domain.DateRange) ([]domain.Posting, error)
}

// LedgerSvc builds account ledgers on read from the posting sources.
type LedgerSvc interface {
	// GetLedger returns the opening balance, running-balance postings and totals of an
	// account (and its descendants for level 1/2) over the requested dates.
	GetLedger(ctx context.Context, query domain.LedgerQuery) (*domain.LedgerResult, error)

	// ReconcileBankAccount replays a bank account's transaction log and reports rows whose
	// stored balance_after disagrees with the recomputed running balance.
	ReconcileBankAccount(ctx context.Context, accountID string) (*domain.BankReconciliation, error)
}
