package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	"github.com/SscSPs/papermill_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportingFixture(t *testing.T) (*memoryStore, portssvc.ReportingService) {
	t.Helper()
	store := newMemoryStore(
		*group("G-1"),
		sub("SG-CUST", "G-1"),
		sub("SG-BOOKS", "G-1"),
		leaf("CUST-1", "SG-CUST", domain.Customer),
		leaf("CASH-1", "SG-BOOKS", domain.Cash),
		leaf("BANK-1", "SG-BOOKS", domain.Bank),
	)
	bank := store.accounts["BANK-1"]
	bank.OpeningBalance = dec("500")
	store.accounts["BANK-1"] = bank

	store.trades = []domain.TradeEntry{
		{EntryID: 1, EntryType: domain.SaleOut, AccountID: "CUST-1", EntryDate: day("2024-01-05"), TotalAmount: dec("1000")},
	}
	store.payments = []domain.Payment{
		{PaymentID: 1, AccountID: "CUST-1", PaymentType: domain.PaymentReceived, PaymentMode: domain.PaymentModeCash,
			Amount: dec("300"), PaymentDate: day("2024-01-10")},
	}
	store.expenses = []domain.Expense{
		{ExpenseID: 1, Category: "Wages", Amount: dec("120"), ExpenseDate: day("2024-01-12")},
	}
	store.bank = []domain.BankTransaction{
		{TransactionID: 1, BankAccountID: "BANK-1", CounterpartyAccountID: "CUST-1", Type: domain.Credit,
			Amount: dec("200"), BalanceAfter: dec("700"), TransactionDate: day("2024-01-15")},
	}

	accounts := services.NewAccountService(store)
	ledger := services.NewLedgerService(accounts, services.NewLedgerAssembler(services.DefaultPostingSources(repoProvider(store)), time.Second), store)
	return store, services.NewReportingService(accounts, ledger, services.WithReportConcurrency(2))
}

func TestTrialBalance(t *testing.T) {
	_, svc := newReportingFixture(t)

	report, err := svc.TrialBalance(context.Background(), day("2024-01-31"))

	require.NoError(t, err)
	ids := make([]string, 0, len(report.Rows))
	rows := map[string]domain.TrialBalanceRow{}
	for _, r := range report.Rows {
		ids = append(ids, r.AccountID)
		rows[r.AccountID] = r
	}
	assert.Equal(t, []string{"G-1", "SG-BOOKS", "BANK-1", "CASH-1", "SG-CUST", "CUST-1"}, ids)

	// CUST-1: 1000 sold, 300 cash and 200 by bank received.
	assert.True(t, dec("500").Equal(rows["CUST-1"].Debit))
	assert.True(t, rows["CUST-1"].Credit.IsZero())
	// CASH-1: 300 in, 120 out; BANK-1: 500 opening plus 200 in. Both held, so credit column.
	assert.True(t, dec("180").Equal(rows["CASH-1"].Credit))
	assert.True(t, dec("700").Equal(rows["BANK-1"].Credit))

	// The group nets customers against the cash books.
	assert.True(t, dec("380").Equal(report.TotalCredit), "got %s", report.TotalCredit)
	assert.True(t, report.TotalDebit.IsZero())
	assert.Empty(t, report.Warnings)
}

func TestCashFlow(t *testing.T) {
	_, svc := newReportingFixture(t)
	start, end := day("2024-01-01"), day("2024-01-31")

	report, err := svc.CashFlow(context.Background(), &start, &end)

	require.NoError(t, err)
	require.Len(t, report.Accounts, 2)
	assert.Equal(t, "BANK-1", report.Accounts[0].AccountID)
	assert.True(t, dec("500").Equal(report.Accounts[0].OpeningBalance))
	assert.True(t, dec("700").Equal(report.Accounts[0].ClosingBalance))
	assert.True(t, dec("500").Equal(report.TotalInflow))
	assert.True(t, dec("120").Equal(report.TotalOutflow))
	assert.True(t, dec("880").Equal(report.ClosingBalance))

	require.Len(t, report.Inflows, 2)
	assert.Equal(t, domain.SourcePaymentReceived, report.Inflows[0].SourceType)
	assert.Equal(t, domain.SourceBankCredit, report.Inflows[1].SourceType)
	require.Len(t, report.Outflows, 1)
	assert.Equal(t, domain.SourceExpense, report.Outflows[0].SourceType)
	assert.Equal(t, 1, report.Outflows[0].Count)
}

func TestCashFlow_SecondCashAccountCountsNothingTwice(t *testing.T) {
	store, svc := newReportingFixture(t)
	store.accounts["CASH-2"] = leaf("CASH-2", "SG-BOOKS", domain.Cash)
	start, end := day("2024-01-01"), day("2024-01-31")

	report, err := svc.CashFlow(context.Background(), &start, &end)

	require.NoError(t, err)
	require.Len(t, report.Accounts, 3)
	assert.True(t, dec("500").Equal(report.TotalInflow), "got %s", report.TotalInflow)
	assert.True(t, dec("120").Equal(report.TotalOutflow), "got %s", report.TotalOutflow)
	for _, acc := range report.Accounts {
		if acc.AccountID == "CASH-2" {
			assert.True(t, acc.Inflow.IsZero())
			assert.True(t, acc.Outflow.IsZero())
		}
	}
}

func TestCashFlow_InvalidRange(t *testing.T) {
	store, svc := newReportingFixture(t)
	start, end := day("2024-02-01"), day("2024-01-01")

	_, err := svc.CashFlow(context.Background(), &start, &end)

	assert.Error(t, err)
	assert.Zero(t, store.calls.Load())
}
