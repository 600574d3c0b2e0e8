package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// GateEntry is a gate_entries row joined to its gate_entry_pricing row.
type GateEntry struct {
	EntryID       int64           `db:"entry_id"`
	GRNNumber     string          `db:"grn_number"`
	EntryType     string          `db:"entry_type"`
	AccountID     string          `db:"account_id"`
	EntryDate     time.Time       `db:"entry_date"`
	ItemName      sql.NullString  `db:"item_name"`
	Description   sql.NullString  `db:"description"`
	Quantity      decimal.Decimal `db:"quantity"`
	Deduction     decimal.Decimal `db:"deduction"`
	FinalQuantity decimal.Decimal `db:"final_quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
}

// GateReturn is a gate_returns row joined to the original entry and its pricing.
type GateReturn struct {
	ReturnID        int64           `db:"return_id"`
	ReturnGRN       sql.NullString  `db:"return_grn"`
	ReturnType      string          `db:"return_type"`
	ReturnDate      time.Time       `db:"return_date"`
	Quantity        decimal.Decimal `db:"quantity"`
	Description     sql.NullString  `db:"description"`
	OriginalEntryID int64           `db:"original_entry_id"`
	OriginalGRN     string          `db:"original_grn"`
	AccountID       string          `db:"account_id"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
}

// Payment is a row of the payments table.
type Payment struct {
	PaymentID     int64           `db:"payment_id"`
	AccountID     string          `db:"account_id"`
	PaymentType   string          `db:"payment_type"`
	PaymentMode   string          `db:"payment_mode"`
	Amount        decimal.Decimal `db:"amount"`
	BankAccountID sql.NullString  `db:"bank_account_id"`
	ReferenceNo   sql.NullString  `db:"reference_no"`
	Description   sql.NullString  `db:"description"`
	PaymentDate   time.Time       `db:"payment_date"`
}

// BankTransaction is a row of the bank_transactions table.
type BankTransaction struct {
	TransactionID         int64           `db:"transaction_id"`
	BankAccountID         string          `db:"bank_account_id"`
	CounterpartyAccountID sql.NullString  `db:"counterparty_account_id"`
	PaymentID             sql.NullInt64   `db:"payment_id"`
	TransactionType       string          `db:"transaction_type"`
	Amount                decimal.Decimal `db:"amount"`
	BalanceAfter          decimal.Decimal `db:"balance_after"`
	ReferenceNo           sql.NullString  `db:"reference_no"`
	Description           sql.NullString  `db:"description"`
	TransactionDate       time.Time       `db:"transaction_date"`
}

// Expense is a row of the expenses table.
type Expense struct {
	ExpenseID   int64           `db:"expense_id"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	ReferenceNo sql.NullString  `db:"reference_no"`
	Description sql.NullString  `db:"description"`
	ExpenseDate time.Time       `db:"expense_date"`
}
