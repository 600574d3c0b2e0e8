package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GateEntryType is the direction of goods through the mill gate.
type GateEntryType string

const (
	PurchaseIn GateEntryType = "PURCHASE_IN"
	SaleOut    GateEntryType = "SALE_OUT"
)

// TradeEntry is a priced gate entry (gate_entries joined to gate_entry_pricing).
type TradeEntry struct {
	EntryID       int64
	GRNNumber     string
	EntryType     GateEntryType
	AccountID     string
	EntryDate     time.Time
	ItemName      string
	Description   string
	Quantity      decimal.Decimal
	Deduction     decimal.Decimal
	FinalQuantity decimal.Decimal
	UnitPrice     decimal.Decimal
	TotalAmount   decimal.Decimal
}

// ReturnType distinguishes purchase returns from sale returns.
type ReturnType string

const (
	PurchaseReturn ReturnType = "PURCHASE_RETURN"
	SaleReturn     ReturnType = "SALE_RETURN"
)

// TradeReturn is a gate return joined back to the original entry and its pricing.
type TradeReturn struct {
	ReturnID        int64
	ReturnGRN       string
	ReturnType      ReturnType
	ReturnDate      time.Time
	Quantity        decimal.Decimal
	Description     string
	OriginalEntryID int64
	OriginalGRN     string
	AccountID       string          // account of the original entry
	UnitPrice       decimal.Decimal // unit price of the original entry
}

// PaymentType is the direction of a payment relative to the mill.
type PaymentType string

const (
	PaymentReceived PaymentType = "RECEIVED"
	PaymentIssued   PaymentType = "ISSUED"
)

// PaymentMode is how a payment was settled.
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "CASH"
	PaymentModeCheque PaymentMode = "CHEQUE"
	// PaymentModeOnline payments are mirrored in bank_transactions and must be read from there.
	PaymentModeOnline PaymentMode = "ONLINE"
)

// Payment is a row of the payments table.
type Payment struct {
	PaymentID     int64
	AccountID     string
	PaymentType   PaymentType
	PaymentMode   PaymentMode
	Amount        decimal.Decimal
	BankAccountID string
	ReferenceNo   string
	Description   string
	PaymentDate   time.Time
}

// BankTransaction is a row of bank_transactions. Type is from the bank's point of view:
// CREDIT is money into the bank account.
type BankTransaction struct {
	TransactionID         int64
	BankAccountID         string
	CounterpartyAccountID string
	PaymentID             *int64
	Type                  EntryType
	Amount                decimal.Decimal
	BalanceAfter          decimal.Decimal
	ReferenceNo           string
	Description           string
	TransactionDate       time.Time
}

// Expense is a row of the expenses table; expenses are always paid from cash.
type Expense struct {
	ExpenseID   int64
	Category    string
	Amount      decimal.Decimal
	ReferenceNo string
	Description string
	ExpenseDate time.Time
}
