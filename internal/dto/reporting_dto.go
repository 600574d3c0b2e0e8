package dto

import (
	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	"github.com/SscSPs/papermill_ledger/internal/utils"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID       string              `json:"accountID"`
	AccountName     string              `json:"accountName"`
	AccountType     string              `json:"accountType"`
	Level           domain.AccountLevel `json:"level"`
	ParentAccountID string              `json:"parentAccountID"`
	Debit           string              `json:"debit"`
	Credit          string              `json:"credit"`
	Partial         bool                `json:"partial"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  string `json:"debit"`
		Credit string `json:"credit"`
	} `json:"totals"`
	Warnings []domain.SourceWarning `json:"warnings"`
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf:     report.AsOf.Format(dateLayout),
		Rows:     make([]TrialBalanceRowResponse, len(report.Rows)),
		Warnings: report.Warnings,
	}
	if response.Warnings == nil {
		response.Warnings = []domain.SourceWarning{}
	}

	for i, row := range report.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:       row.AccountID,
			AccountName:     row.AccountName,
			AccountType:     string(row.AccountType),
			Level:           row.Level,
			ParentAccountID: row.ParentAccountID,
			Debit:           utils.FormatAmount(row.Debit),
			Credit:          utils.FormatAmount(row.Credit),
			Partial:         row.Partial,
		}
	}

	response.Totals.Debit = utils.FormatAmount(report.TotalDebit)
	response.Totals.Credit = utils.FormatAmount(report.TotalCredit)

	return response
}

// CashFlowLineResponse is money moved by one kind of source.
type CashFlowLineResponse struct {
	SourceType domain.SourceType `json:"sourceType"`
	Amount     string            `json:"amount"`
	Count      int               `json:"count"`
}

// CashFlowAccountResponse is one cash or bank book in the cash flow report.
type CashFlowAccountResponse struct {
	AccountID      string `json:"accountID"`
	Name           string `json:"name"`
	OpeningBalance string `json:"openingBalance"`
	Inflow         string `json:"inflow"`
	Outflow        string `json:"outflow"`
	ClosingBalance string `json:"closingBalance"`
}

// CashFlowResponse represents the cash flow report response
type CashFlowResponse struct {
	FromDate *string                   `json:"fromDate,omitempty"`
	ToDate   *string                   `json:"toDate,omitempty"`
	Accounts []CashFlowAccountResponse `json:"accounts"`
	Inflows  []CashFlowLineResponse    `json:"inflows"`
	Outflows []CashFlowLineResponse    `json:"outflows"`
	Summary  struct {
		OpeningBalance string `json:"openingBalance"`
		TotalInflow    string `json:"totalInflow"`
		TotalOutflow   string `json:"totalOutflow"`
		ClosingBalance string `json:"closingBalance"`
	} `json:"summary"`
	Warnings []domain.SourceWarning `json:"warnings"`
}

// ToCashFlowResponse converts a domain cash flow report to a DTO response
func ToCashFlowResponse(report *domain.CashFlowReport) CashFlowResponse {
	response := CashFlowResponse{
		FromDate: formatOptionalDate(report.StartDate),
		ToDate:   formatOptionalDate(report.EndDate),
		Accounts: make([]CashFlowAccountResponse, len(report.Accounts)),
		Inflows:  toCashFlowLines(report.Inflows),
		Outflows: toCashFlowLines(report.Outflows),
		Warnings: report.Warnings,
	}
	if response.Warnings == nil {
		response.Warnings = []domain.SourceWarning{}
	}

	for i, acc := range report.Accounts {
		response.Accounts[i] = CashFlowAccountResponse{
			AccountID:      acc.AccountID,
			Name:           acc.Name,
			OpeningBalance: utils.FormatAmount(acc.OpeningBalance),
			Inflow:         utils.FormatAmount(acc.Inflow),
			Outflow:        utils.FormatAmount(acc.Outflow),
			ClosingBalance: utils.FormatAmount(acc.ClosingBalance),
		}
	}

	response.Summary.OpeningBalance = utils.FormatAmount(report.OpeningBalance)
	response.Summary.TotalInflow = utils.FormatAmount(report.TotalInflow)
	response.Summary.TotalOutflow = utils.FormatAmount(report.TotalOutflow)
	response.Summary.ClosingBalance = utils.FormatAmount(report.ClosingBalance)

	return response
}

func toCashFlowLines(lines []domain.CashFlowLine) []CashFlowLineResponse {
	res := make([]CashFlowLineResponse, len(lines))
	for i, l := range lines {
		res[i] = CashFlowLineResponse{SourceType: l.SourceType, Amount: utils.FormatAmount(l.Amount), Count: l.Count}
	}
	return res
}
