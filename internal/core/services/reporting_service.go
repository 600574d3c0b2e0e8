package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/papermill_ledger/internal/apperrors"
	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	"github.com/SscSPs/papermill_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultReportConcurrency is the number of ledgers a report computes at once when not configured.
const DefaultReportConcurrency = 4

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accounts    portssvc.AccountReaderSvc
	ledger      portssvc.LedgerSvc
	concurrency int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportConcurrency bounds how many account ledgers a report computes in parallel.
func WithReportConcurrency(n int) ReportingServiceOption {
	return func(s *reportingService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(accounts portssvc.AccountReaderSvc, ledger portssvc.LedgerSvc, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		accounts:    accounts,
		ledger:      ledger,
		concurrency: DefaultReportConcurrency,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates a trial balance as of a specific date: every account of the chart
// with its closing balance (including descendants for groups and sub-groups) placed in the
// Debit or Credit column.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	accounts, err := s.accounts.ListAccounts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for trial balance: %w", err)
	}

	ledgers, err := s.computeLedgers(ctx, accounts, nil, &asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute trial balance",
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, err
	}

	report := &domain.TrialBalanceReport{
		AsOf:        asOf,
		Rows:        make([]domain.TrialBalanceRow, 0, len(accounts)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		Warnings:    []domain.SourceWarning{},
	}
	for _, acc := range chartOrder(accounts) {
		res := ledgers[acc.AccountID]
		debit, credit := accounting.SplitColumns(res.ClosingBalance, acc.BalanceType)
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID:       acc.AccountID,
			AccountName:     acc.Name,
			AccountType:     acc.AccountType,
			Level:           acc.Level,
			ParentAccountID: acc.ParentAccountID,
			Debit:           debit,
			Credit:          credit,
			Partial:         res.IsPartial(),
		})
		if acc.Level == domain.LevelGroup {
			report.TotalDebit = report.TotalDebit.Add(debit)
			report.TotalCredit = report.TotalCredit.Add(credit)
		}
		report.Warnings = append(report.Warnings, prefixWarnings(acc.AccountID, res.Warnings)...)
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(report.Rows)),
		slog.Int("warnings", len(report.Warnings)))
	return report, nil
}

// CashFlow summarizes money in and out of every cash and bank account over a period.
// Balances are expressed in the statement convention, so a positive balance is money held.
func (s *reportingService) CashFlow(ctx context.Context, startDate, endDate *time.Time) (*domain.CashFlowReport, error) {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidDateRange,
			startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	}

	var books []domain.Account
	for _, t := range []domain.AccountType{domain.Cash, domain.Bank} {
		accs, err := s.accounts.ListAccounts(ctx, &t)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s accounts for cash flow: %w", t, err)
		}
		for _, acc := range accs {
			if acc.Level == domain.LevelLeaf {
				books = append(books, acc)
			}
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].AccountID < books[j].AccountID })

	ledgers, err := s.computeLedgers(ctx, books, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute cash flow")
		return nil, err
	}

	report := &domain.CashFlowReport{
		StartDate:      startDate,
		EndDate:        endDate,
		Accounts:       make([]domain.CashFlowAccount, 0, len(books)),
		OpeningBalance: decimal.Zero,
		TotalInflow:    decimal.Zero,
		TotalOutflow:   decimal.Zero,
		ClosingBalance: decimal.Zero,
		Warnings:       []domain.SourceWarning{},
	}
	inflows := map[domain.SourceType]*domain.CashFlowLine{}
	outflows := map[domain.SourceType]*domain.CashFlowLine{}

	for _, acc := range books {
		res := ledgers[acc.AccountID]
		line := domain.CashFlowAccount{
			AccountID:      acc.AccountID,
			Name:           acc.Name,
			OpeningBalance: accounting.ToStatementBalance(res.OpeningBalance, acc.BalanceType),
			Inflow:         res.TotalCredit,
			Outflow:        res.TotalDebit,
			ClosingBalance: accounting.ToStatementBalance(res.ClosingBalance, acc.BalanceType),
		}
		report.Accounts = append(report.Accounts, line)
		report.OpeningBalance = report.OpeningBalance.Add(line.OpeningBalance)
		report.ClosingBalance = report.ClosingBalance.Add(line.ClosingBalance)
		report.TotalInflow = report.TotalInflow.Add(line.Inflow)
		report.TotalOutflow = report.TotalOutflow.Add(line.Outflow)

		for _, p := range res.Transactions {
			bucket := inflows
			if p.EntryType == domain.Debit {
				bucket = outflows
			}
			l, ok := bucket[p.SourceType]
			if !ok {
				l = &domain.CashFlowLine{SourceType: p.SourceType, Amount: decimal.Zero}
				bucket[p.SourceType] = l
			}
			l.Amount = l.Amount.Add(p.Amount)
			l.Count++
		}
		report.Warnings = append(report.Warnings, prefixWarnings(acc.AccountID, res.Warnings)...)
	}
	report.Inflows = sortedLines(inflows)
	report.Outflows = sortedLines(outflows)

	s.LogInfo(ctx, "Cash flow report generated successfully",
		slog.Int("accounts", len(report.Accounts)),
		slog.String("total_inflow", report.TotalInflow.String()),
		slog.String("total_outflow", report.TotalOutflow.String()))
	return report, nil
}

// computeLedgers builds the ledger of every account concurrently, at most s.concurrency at
// a time. The first hard failure cancels the rest.
func (s *reportingService) computeLedgers(ctx context.Context, accounts []domain.Account, startDate, endDate *time.Time) (map[string]*domain.LedgerResult, error) {
	results := make([]*domain.LedgerResult, len(accounts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, acc := range accounts {
		g.Go(func() error {
			res, err := s.ledger.GetLedger(gctx, domain.LedgerQuery{
				AccountID: acc.AccountID,
				Level:     acc.Level,
				StartDate: startDate,
				EndDate:   endDate,
			})
			if err != nil {
				return fmt.Errorf("ledger of %s: %w", acc.AccountID, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*domain.LedgerResult, len(accounts))
	for i, acc := range accounts {
		out[acc.AccountID] = results[i]
	}
	return out, nil
}

// chartOrder lists accounts depth-first from the level-1 groups, siblings by id. Accounts
// whose parent is missing from the chart follow at the end.
func chartOrder(accounts []domain.Account) []domain.Account {
	byParent := map[string][]domain.Account{}
	known := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		known[acc.AccountID] = true
	}
	var roots []domain.Account
	for _, acc := range accounts {
		if acc.ParentAccountID == "" {
			roots = append(roots, acc)
			continue
		}
		byParent[acc.ParentAccountID] = append(byParent[acc.ParentAccountID], acc)
	}
	byID := func(list []domain.Account) {
		sort.Slice(list, func(i, j int) bool { return list[i].AccountID < list[j].AccountID })
	}
	byID(roots)

	ordered := make([]domain.Account, 0, len(accounts))
	visited := make(map[string]bool, len(accounts))
	var walk func(acc domain.Account)
	walk = func(acc domain.Account) {
		if visited[acc.AccountID] {
			return
		}
		visited[acc.AccountID] = true
		ordered = append(ordered, acc)
		children := byParent[acc.AccountID]
		byID(children)
		for _, c := range children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}

	var orphans []domain.Account
	for _, acc := range accounts {
		if !visited[acc.AccountID] {
			orphans = append(orphans, acc)
		}
	}
	byID(orphans)
	for _, o := range orphans {
		walk(o)
	}
	return ordered
}

func prefixWarnings(accountID string, warnings []domain.SourceWarning) []domain.SourceWarning {
	out := make([]domain.SourceWarning, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, domain.SourceWarning{
			Source:  w.Source,
			Message: accountID + ": " + w.Message,
		})
	}
	return out
}

func sortedLines(lines map[domain.SourceType]*domain.CashFlowLine) []domain.CashFlowLine {
	out := make([]domain.CashFlowLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SourceType.Ordinal() != out[j].SourceType.Ordinal() {
			return out[i].SourceType.Ordinal() < out[j].SourceType.Ordinal()
		}
		return out[i].SourceType < out[j].SourceType
	})
	return out
}
