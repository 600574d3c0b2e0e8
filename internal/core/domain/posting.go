package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a posting is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// SourceType names the domain event a posting was derived from.
type SourceType string

const (
	SourcePurchase        SourceType = "PURCHASE"
	SourcePurchaseReturn  SourceType = "PURCHASE_RETURN"
	SourceSale            SourceType = "SALE"
	SourceSaleReturn      SourceType = "SALE_RETURN"
	SourcePaymentReceived SourceType = "PAYMENT_RECEIVED"
	SourcePaymentIssued   SourceType = "PAYMENT_ISSUED"
	SourceBankCredit      SourceType = "BANK_CREDIT"
	SourceBankDebit       SourceType = "BANK_DEBIT"
	SourceExpense         SourceType = "EXPENSE"
)

// sourceOrdinals fixes the tie-break order of postings sharing a date. Source types read
// from the same table share an ordinal so that rows of one table keep their row-id order.
var sourceOrdinals = map[SourceType]int{
	SourcePurchase:        1,
	SourceSale:            1,
	SourcePurchaseReturn:  2,
	SourceSaleReturn:      2,
	SourcePaymentReceived: 3,
	SourcePaymentIssued:   3,
	SourceBankCredit:      4,
	SourceBankDebit:       4,
	SourceExpense:         5,
}

// Ordinal returns the position of the source type in the deterministic ordering.
func (s SourceType) Ordinal() int {
	if o, ok := sourceOrdinals[s]; ok {
		return o
	}
	return 99
}

// Posting is a single ledger movement derived on read from a source table row.
// Amount is never negative; direction is carried only by EntryType.
type Posting struct {
	AccountID   string          `json:"accountID"`
	Date        time.Time       `json:"date"`
	SourceType  SourceType      `json:"sourceType"`
	EntryType   EntryType       `json:"entryType"`
	Amount      decimal.Decimal `json:"amount"`
	ReferenceNo string          `json:"referenceNo"`
	Description string          `json:"description"`

	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Deduction   *decimal.Decimal `json:"deduction,omitempty"`
	NetQuantity *decimal.Decimal `json:"netQuantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`

	// RowID is the primary key of the source row, used as the stable sort key.
	RowID int64 `json:"rowID"`
	// BalanceAfter is the stored bank running balance, present on bank-side postings only.
	BalanceAfter *decimal.Decimal `json:"balanceAfter,omitempty"`

	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// Less orders postings chronologically with a deterministic tie-break.
func (p Posting) Less(o Posting) bool {
	if !p.Date.Equal(o.Date) {
		return p.Date.Before(o.Date)
	}
	if p.SourceType.Ordinal() != o.SourceType.Ordinal() {
		return p.SourceType.Ordinal() < o.SourceType.Ordinal()
	}
	if p.RowID != o.RowID {
		return p.RowID < o.RowID
	}
	if p.AccountID != o.AccountID {
		return p.AccountID < o.AccountID
	}
	return p.EntryType < o.EntryType
}
