package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountID       string          `json:"accountID"`
	AccountName     string          `json:"accountName"`
	AccountType     AccountType     `json:"accountType"`
	Level           AccountLevel    `json:"level"`
	ParentAccountID string          `json:"parentAccountID"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Partial         bool            `json:"partial"`
}

// TrialBalanceReport is the chart of accounts with closing balances as of a date.
type TrialBalanceReport struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Warnings    []SourceWarning   `json:"warnings"`
}

// CashFlowLine is the total movement of one source type through the cash books.
type CashFlowLine struct {
	SourceType SourceType      `json:"sourceType"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
}

// CashFlowAccount summarizes one cash or bank account over the period.
type CashFlowAccount struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Inflow         decimal.Decimal `json:"inflow"`
	Outflow        decimal.Decimal `json:"outflow"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// CashFlowReport aggregates money in and out of all cash books over a period.
type CashFlowReport struct {
	StartDate      *time.Time        `json:"startDate,omitempty"`
	EndDate        *time.Time        `json:"endDate,omitempty"`
	Accounts       []CashFlowAccount `json:"accounts"`
	Inflows        []CashFlowLine    `json:"inflows"`
	Outflows       []CashFlowLine    `json:"outflows"`
	OpeningBalance decimal.Decimal   `json:"openingBalance"`
	TotalInflow    decimal.Decimal   `json:"totalInflow"`
	TotalOutflow   decimal.Decimal   `json:"totalOutflow"`
	ClosingBalance decimal.Decimal   `json:"closingBalance"`
	Warnings       []SourceWarning   `json:"warnings"`
}
