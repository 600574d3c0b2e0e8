package services

import (
	"context"
	"time"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a chart-of-accounts trial balance as of a specific date
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error)

	// CashFlow summarizes money in and out of the cash and bank accounts over a period
	CashFlow(ctx context.Context, startDate, endDate *time.Time) (*domain.CashFlowReport, error)
}
