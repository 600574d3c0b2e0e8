package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is a half-open interval [Start, EndExclusive). A nil bound is unbounded.
type DateRange struct {
	Start        *time.Time
	EndExclusive *time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.EndExclusive != nil && !t.Before(*r.EndExclusive) {
		return false
	}
	return true
}

// LedgerQuery is the caller-facing request for an account ledger.
// StartDate and EndDate are calendar days; EndDate is inclusive.
type LedgerQuery struct {
	AccountID string
	Level     AccountLevel
	StartDate *time.Time
	EndDate   *time.Time
}

// EndExclusive returns the day after EndDate so the whole end day is included.
func (q LedgerQuery) EndExclusive() *time.Time {
	if q.EndDate == nil {
		return nil
	}
	end := truncateDay(*q.EndDate).AddDate(0, 0, 1)
	return &end
}

// Start returns StartDate truncated to the beginning of its day.
func (q LedgerQuery) Start() *time.Time {
	if q.StartDate == nil {
		return nil
	}
	start := truncateDay(*q.StartDate)
	return &start
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AccountScope is the set of accounts whose postings make up one ledger.
type AccountScope struct {
	Root        Account
	Accounts    map[string]Account
	AccountIDs  []string // sorted
	IsAggregate bool
	// CashAccountID is set when the scope contains the cash account; cash-side payment
	// postings and expenses are attributed to it.
	CashAccountID string
}

// Contains reports whether accountID is part of the scope.
func (s AccountScope) Contains(accountID string) bool {
	_, ok := s.Accounts[accountID]
	return ok
}

// SourceName identifies a posting source adapter.
type SourceName string

const (
	SourceNameTrade   SourceName = "trade"
	SourceNameReturn  SourceName = "return"
	SourceNamePayment SourceName = "payment"
	SourceNameBank    SourceName = "bank"
	SourceNameExpense SourceName = "expense"
	// SourceNameBankCheck flags a disagreement between the stored and recomputed bank balance.
	SourceNameBankCheck SourceName = "bank_balance_check"
)

// SourceWarning is attached to a ledger when part of it could not be built.
type SourceWarning struct {
	Source  SourceName `json:"source"`
	Message string     `json:"message"`
}

// LedgerResult is an account ledger with opening balance, running balances and totals.
type LedgerResult struct {
	Account        Account         `json:"account"`
	Level          AccountLevel    `json:"level"`
	AccountIDs     []string        `json:"accountIDs"`
	StartDate      *time.Time      `json:"startDate,omitempty"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Transactions   []Posting       `json:"transactions"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Warnings       []SourceWarning `json:"warnings"`
	FailedSources  []SourceName    `json:"failedSources"`
}

// IsPartial reports whether one or more sources failed while building the ledger.
func (r LedgerResult) IsPartial() bool {
	return len(r.FailedSources) > 0
}

// BalanceMismatch is a bank row whose stored balance_after disagrees with the balance
// recomputed from the transaction log.
type BalanceMismatch struct {
	RowID       int64           `json:"rowID"`
	Date        time.Time       `json:"date"`
	ReferenceNo string          `json:"referenceNo"`
	Stored      decimal.Decimal `json:"stored"`
	Recomputed  decimal.Decimal `json:"recomputed"`
}

// BankReconciliation is the result of replaying a bank account's transaction log.
type BankReconciliation struct {
	Account    Account           `json:"account"`
	RowsCount  int               `json:"rowsCount"`
	Mismatches []BalanceMismatch `json:"mismatches"`
	Balance    decimal.Decimal   `json:"balance"`
}
