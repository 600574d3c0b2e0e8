package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies the counterparty or purpose of an account in the chart.
type AccountType string

const (
	Supplier       AccountType = "SUPPLIER"
	Customer       AccountType = "CUSTOMER"
	Vendor         AccountType = "VENDOR"
	Bank           AccountType = "BANK"
	Cash           AccountType = "CASH"
	ExpenseAccount AccountType = "EXPENSE"
	General        AccountType = "GENERAL"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Supplier, Customer, Vendor, Bank, Cash, ExpenseAccount, General:
		return true
	}
	return false
}

// AccountLevel is the position of an account in the three-tier chart of accounts.
type AccountLevel int

const (
	// LevelUnspecified lets the resolver fall back to the stored level.
	LevelUnspecified AccountLevel = 0
	LevelGroup       AccountLevel = 1
	LevelSubGroup    AccountLevel = 2
	LevelLeaf        AccountLevel = 3
)

// Valid reports whether l is a concrete hierarchy level.
func (l AccountLevel) Valid() bool {
	return l >= LevelGroup && l <= LevelLeaf
}

// BalanceType is the normal side of an account: the side whose postings increase it.
type BalanceType string

const (
	DebitNormal  BalanceType = "DEBIT"
	CreditNormal BalanceType = "CREDIT"
)

// Account represents an entry of the chart of accounts.
type Account struct {
	AccountID       string          `json:"accountID"`
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	Level           AccountLevel    `json:"level"`
	ParentAccountID string          `json:"parentAccountID"` // empty for level 1
	OpeningBalance  decimal.Decimal `json:"openingBalance"`  // expressed on the account's normal side
	BalanceType     BalanceType     `json:"balanceType"`
	IsActive        bool            `json:"isActive"`
	AuditFields
}

// IsCashBook reports whether the account is a cash or bank account. Cash books use the
// statement convention where CREDIT means money in.
func (a Account) IsCashBook() bool {
	return a.AccountType == Cash || a.AccountType == Bank
}
