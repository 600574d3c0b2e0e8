package dto

import (
	"time"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	"github.com/SscSPs/papermill_ledger/internal/utils"
)

const dateLayout = "2006-01-02"

// LedgerQueryParams defines query parameters for a ledger request.
type LedgerQueryParams struct {
	Level     int    `form:"level" binding:"omitempty,min=1,max=3"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToLedgerQuery converts the bound parameters to a domain query. Dates have already been
// validated by the binding.
func (p LedgerQueryParams) ToLedgerQuery(accountID string) domain.LedgerQuery {
	return domain.LedgerQuery{
		AccountID: accountID,
		Level:     domain.AccountLevel(p.Level),
		StartDate: parseOptionalDate(p.StartDate),
		EndDate:   parseOptionalDate(p.EndDate),
	}
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// PostingResponse is one ledger row.
type PostingResponse struct {
	Date           string            `json:"date"`
	AccountID      string            `json:"accountID"`
	SourceType     domain.SourceType `json:"sourceType"`
	EntryType      domain.EntryType  `json:"entryType"`
	Amount         string            `json:"amount"`
	ReferenceNo    string            `json:"referenceNo"`
	Description    string            `json:"description"`
	Quantity       *string           `json:"quantity,omitempty"`
	Deduction      *string           `json:"deduction,omitempty"`
	NetQuantity    *string           `json:"netQuantity,omitempty"`
	UnitPrice      *string           `json:"unitPrice,omitempty"`
	RunningBalance string            `json:"runningBalance"`
}

// LedgerResponse defines the data returned for a ledger request.
type LedgerResponse struct {
	Account        AccountResponse        `json:"account"`
	Level          domain.AccountLevel    `json:"level"`
	AccountIDs     []string               `json:"accountIDs"`
	StartDate      *string                `json:"startDate,omitempty"`
	EndDate        *string                `json:"endDate,omitempty"`
	OpeningBalance string                 `json:"openingBalance"`
	Transactions   []PostingResponse      `json:"transactions"`
	TotalDebit     string                 `json:"totalDebit"`
	TotalCredit    string                 `json:"totalCredit"`
	ClosingBalance string                 `json:"closingBalance"`
	Partial        bool                   `json:"partial"`
	Warnings       []domain.SourceWarning `json:"warnings"`
	FailedSources  []domain.SourceName    `json:"failedSources"`
}

// ToLedgerResponse converts a domain ledger to its display form. Balances keep full precision
// until this point.
func ToLedgerResponse(res *domain.LedgerResult) LedgerResponse {
	txns := make([]PostingResponse, len(res.Transactions))
	for i, p := range res.Transactions {
		txns[i] = PostingResponse{
			Date:           p.Date.Format(dateLayout),
			AccountID:      p.AccountID,
			SourceType:     p.SourceType,
			EntryType:      p.EntryType,
			Amount:         utils.FormatAmount(p.Amount),
			ReferenceNo:    p.ReferenceNo,
			Description:    p.Description,
			Quantity:       utils.FormatOptionalAmount(p.Quantity),
			Deduction:      utils.FormatOptionalAmount(p.Deduction),
			NetQuantity:    utils.FormatOptionalAmount(p.NetQuantity),
			UnitPrice:      utils.FormatOptionalAmount(p.UnitPrice),
			RunningBalance: utils.FormatAmount(p.RunningBalance),
		}
	}

	warnings := res.Warnings
	if warnings == nil {
		warnings = []domain.SourceWarning{}
	}
	failed := res.FailedSources
	if failed == nil {
		failed = []domain.SourceName{}
	}

	return LedgerResponse{
		Account:        ToAccountResponse(&res.Account),
		Level:          res.Level,
		AccountIDs:     res.AccountIDs,
		StartDate:      formatOptionalDate(res.StartDate),
		EndDate:        formatOptionalDate(res.EndDate),
		OpeningBalance: utils.FormatAmount(res.OpeningBalance),
		Transactions:   txns,
		TotalDebit:     utils.FormatAmount(res.TotalDebit),
		TotalCredit:    utils.FormatAmount(res.TotalCredit),
		ClosingBalance: utils.FormatAmount(res.ClosingBalance),
		Partial:        res.IsPartial(),
		Warnings:       warnings,
		FailedSources:  failed,
	}
}

// BalanceMismatchResponse is a bank row whose stored balance disagrees with the replay.
type BalanceMismatchResponse struct {
	RowID       int64  `json:"rowID"`
	Date        string `json:"date"`
	ReferenceNo string `json:"referenceNo"`
	Stored      string `json:"stored"`
	Recomputed  string `json:"recomputed"`
}

// BankReconciliationResponse defines the data returned for a bank reconciliation.
type BankReconciliationResponse struct {
	AccountID  string                    `json:"accountID"`
	Name       string                    `json:"name"`
	RowsCount  int                       `json:"rowsCount"`
	Balance    string                    `json:"balance"`
	Reconciled bool                      `json:"reconciled"`
	Mismatches []BalanceMismatchResponse `json:"mismatches"`
}

// ToBankReconciliationResponse converts a domain reconciliation to its display form.
func ToBankReconciliationResponse(rec *domain.BankReconciliation) BankReconciliationResponse {
	mismatches := make([]BalanceMismatchResponse, len(rec.Mismatches))
	for i, m := range rec.Mismatches {
		mismatches[i] = BalanceMismatchResponse{
			RowID:       m.RowID,
			Date:        m.Date.Format(dateLayout),
			ReferenceNo: m.ReferenceNo,
			Stored:      utils.FormatAmount(m.Stored),
			Recomputed:  utils.FormatAmount(m.Recomputed),
		}
	}
	return BankReconciliationResponse{
		AccountID:  rec.Account.AccountID,
		Name:       rec.Account.Name,
		RowsCount:  rec.RowsCount,
		Balance:    utils.FormatAmount(rec.Balance),
		Reconciled: len(rec.Mismatches) == 0,
		Mismatches: mismatches,
	}
}
