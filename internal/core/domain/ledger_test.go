package domain_test

import (
	"sort"
	"testing"
	"time"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLedgerQuery_EndExclusiveCoversWholeEndDay(t *testing.T) {
	end := time.Date(2024, 1, 31, 15, 30, 0, 0, time.UTC)
	q := domain.LedgerQuery{EndDate: &end}

	excl := q.EndExclusive()
	require.NotNil(t, excl)
	assert.Equal(t, date(2024, 2, 1), *excl)

	rng := domain.DateRange{EndExclusive: excl}
	assert.True(t, rng.Contains(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, rng.Contains(date(2024, 2, 1)))

	assert.Nil(t, domain.LedgerQuery{}.EndExclusive())
	assert.Nil(t, domain.LedgerQuery{}.Start())
}

func TestDateRange_Contains(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 2, 1)
	rng := domain.DateRange{Start: &start, EndExclusive: &end}

	assert.True(t, rng.Contains(start))
	assert.False(t, rng.Contains(start.Add(-time.Nanosecond)))
	assert.False(t, rng.Contains(end))
	assert.True(t, domain.DateRange{}.Contains(date(1990, 1, 1)))
}

func TestPosting_LessIsDeterministic(t *testing.T) {
	d := date(2024, 1, 5)
	postings := []domain.Posting{
		{Date: d, SourceType: domain.SourceExpense, RowID: 1, AccountID: "CASH"},
		{Date: d, SourceType: domain.SourceBankDebit, RowID: 2, AccountID: "BANK"},
		{Date: d, SourceType: domain.SourceBankCredit, RowID: 3, AccountID: "BANK"},
		{Date: d, SourceType: domain.SourcePaymentReceived, RowID: 7, AccountID: "CUST"},
		{Date: d, SourceType: domain.SourcePaymentReceived, RowID: 7, AccountID: "CASH"},
		{Date: date(2024, 1, 4), SourceType: domain.SourceExpense, RowID: 9, AccountID: "CASH"},
		{Date: d, SourceType: domain.SourceSale, RowID: 4, AccountID: "CUST"},
	}
	sort.SliceStable(postings, func(i, j int) bool { return postings[i].Less(postings[j]) })

	var got []string
	for _, p := range postings {
		got = append(got, string(p.SourceType)+"/"+p.AccountID)
	}
	assert.Equal(t, []string{
		"EXPENSE/CASH",
		"SALE/CUST",
		"PAYMENT_RECEIVED/CASH",
		"PAYMENT_RECEIVED/CUST",
		"BANK_DEBIT/BANK",
		"BANK_CREDIT/BANK",
		"EXPENSE/CASH",
	}, got)
}

func TestAccountLevelAndType(t *testing.T) {
	assert.True(t, domain.LevelLeaf.Valid())
	assert.False(t, domain.LevelUnspecified.Valid())
	assert.False(t, domain.AccountLevel(4).Valid())
	assert.True(t, domain.Customer.Valid())
	assert.False(t, domain.AccountType("EMPLOYEE").Valid())
	assert.True(t, domain.Account{AccountType: domain.Bank}.IsCashBook())
	assert.False(t, domain.Account{AccountType: domain.Supplier}.IsCashBook())
}
