package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/SscSPs/papermill_ledger/internal/apperrors"
	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/papermill_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	"github.com/SscSPs/papermill_ledger/internal/utils/accounting"
)

// ledgerService implements the LedgerSvc interface
type ledgerService struct {
	BaseService
	resolver  portssvc.HierarchyResolverSvc
	assembler *LedgerAssembler
	bankRepo  portsrepo.BankTransactionReader
}

// NewLedgerService creates a ledger service. bankRepo is only needed for reconciliation.
func NewLedgerService(resolver portssvc.HierarchyResolverSvc, assembler *LedgerAssembler, bankRepo portsrepo.BankTransactionReader) portssvc.LedgerSvc {
	return &ledgerService{
		resolver:  resolver,
		assembler: assembler,
		bankRepo:  bankRepo,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// GetLedger builds the ledger of an account (or of a whole group or sub-group) over an
// optional date window. The opening balance is the stored opening balances of every
// account in scope plus every posting dated before the window.
func (s *ledgerService) GetLedger(ctx context.Context, q domain.LedgerQuery) (*domain.LedgerResult, error) {
	start := q.Start()
	endExclusive := q.EndExclusive()
	if start != nil && endExclusive != nil && !start.Before(*endExclusive) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidDateRange,
			q.StartDate.Format("2006-01-02"), q.EndDate.Format("2006-01-02"))
	}

	scope, err := s.resolver.Resolve(ctx, q.AccountID, q.Level)
	if err != nil {
		return nil, err
	}

	assembly, err := s.assembler.Assemble(ctx, *scope, domain.DateRange{EndExclusive: endExclusive})
	if err != nil {
		return nil, fmt.Errorf("failed to assemble ledger for %s: %w", q.AccountID, err)
	}

	// Postings are sorted by date, so everything before the first in-window posting
	// belongs to the opening balance.
	split := 0
	if start != nil {
		split = sort.Search(len(assembly.Postings), func(i int) bool {
			return !assembly.Postings[i].Date.Before(*start)
		})
	}

	balanceType := scope.Root.BalanceType
	result, err := accounting.ComputeBalances(accounting.OpeningSeed(*scope),
		assembly.Postings[:split], assembly.Postings[split:], balanceType)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balances", slog.String("account_id", q.AccountID))
		return nil, fmt.Errorf("failed to compute balances for %s: %w", q.AccountID, err)
	}

	result.Account = scope.Root
	result.Level = scope.Root.Level
	result.AccountIDs = scope.AccountIDs
	result.StartDate = start
	if q.EndDate != nil {
		end := endExclusive.AddDate(0, 0, -1)
		result.EndDate = &end
	}
	result.Warnings = append(result.Warnings, assembly.Warnings...)
	result.FailedSources = append(result.FailedSources, assembly.FailedSources...)

	if !scope.IsAggregate && scope.Root.AccountType == domain.Bank && !failed(assembly.FailedSources, domain.SourceNameBank) {
		result.Warnings = append(result.Warnings, checkBankBalances(result.Transactions, scope.Root)...)
	}

	s.LogDebug(ctx, "Ledger computed",
		slog.String("account_id", q.AccountID),
		slog.Int("level", int(result.Level)),
		slog.Int("accounts", len(result.AccountIDs)),
		slog.Int("transactions", len(result.Transactions)),
		slog.Bool("partial", result.IsPartial()))
	return &result, nil
}

// checkBankBalances compares the running balance of each bank-side posting with the
// balance stored on its bank_transactions row.
func checkBankBalances(postings []domain.Posting, bank domain.Account) []domain.SourceWarning {
	var warnings []domain.SourceWarning
	for _, p := range postings {
		if p.BalanceAfter == nil || p.AccountID != bank.AccountID {
			continue
		}
		recomputed := accounting.ToStatementBalance(p.RunningBalance, bank.BalanceType)
		if !recomputed.Equal(*p.BalanceAfter) {
			warnings = append(warnings, domain.SourceWarning{
				Source: domain.SourceNameBankCheck,
				Message: fmt.Sprintf("bank transaction %d on %s: stored balance %s, recomputed %s",
					p.RowID, p.Date.Format("2006-01-02"), p.BalanceAfter.String(), recomputed.String()),
			})
		}
	}
	return warnings
}

// ReconcileBankAccount replays the full transaction log of a bank account from its opening
// balance and reports every row whose stored balance_after disagrees.
func (s *ledgerService) ReconcileBankAccount(ctx context.Context, accountID string) (*domain.BankReconciliation, error) {
	scope, err := s.resolver.Resolve(ctx, accountID, domain.LevelUnspecified)
	if err != nil {
		return nil, err
	}
	account := scope.Root
	if account.AccountType != domain.Bank {
		return nil, fmt.Errorf("%w: account %s is %s, not a bank account", apperrors.ErrValidation, accountID, account.AccountType)
	}
	if s.bankRepo == nil {
		return nil, apperrors.NewAppError(http.StatusServiceUnavailable, "bank transactions are not available", errors.New("no bank repository configured"))
	}

	rows, err := s.bankRepo.FindBankTransactions(ctx, []string{accountID}, domain.DateRange{})
	if err != nil {
		s.LogError(ctx, err, "Failed to read bank transactions", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to read bank transactions for %s: %w", accountID, err)
	}

	own := make([]domain.BankTransaction, 0, len(rows))
	for _, r := range rows {
		if r.BankAccountID == accountID {
			own = append(own, r)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		if !own[i].TransactionDate.Equal(own[j].TransactionDate) {
			return own[i].TransactionDate.Before(own[j].TransactionDate)
		}
		return own[i].TransactionID < own[j].TransactionID
	})

	balance := accounting.ToStatementBalance(account.OpeningBalance, account.BalanceType)
	rec := &domain.BankReconciliation{
		Account:    account,
		RowsCount:  len(own),
		Mismatches: []domain.BalanceMismatch{},
	}
	for _, r := range own {
		switch r.Type {
		case domain.Credit:
			balance = balance.Add(r.Amount)
		case domain.Debit:
			balance = balance.Sub(r.Amount)
		default:
			return nil, fmt.Errorf("bank transaction %d has unknown type %q", r.TransactionID, r.Type)
		}
		if !balance.Equal(r.BalanceAfter) {
			rec.Mismatches = append(rec.Mismatches, domain.BalanceMismatch{
				RowID:       r.TransactionID,
				Date:        r.TransactionDate,
				ReferenceNo: r.ReferenceNo,
				Stored:      r.BalanceAfter,
				Recomputed:  balance,
			})
		}
	}
	rec.Balance = balance

	if len(rec.Mismatches) > 0 {
		s.LogWarn(ctx, "Bank balance mismatches found",
			slog.String("account_id", accountID),
			slog.Int("mismatches", len(rec.Mismatches)))
	}
	return rec, nil
}

func failed(sources []domain.SourceName, name domain.SourceName) bool {
	for _, s := range sources {
		if s == name {
			return true
		}
	}
	return false
}
