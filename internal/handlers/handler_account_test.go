package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/papermill_ledger/internal/apperrors"
	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	"github.com/SscSPs/papermill_ledger/internal/dto"
	"github.com/SscSPs/papermill_ledger/internal/handlers"
	"github.com/SscSPs/papermill_ledger/internal/middleware"
	"github.com/SscSPs/papermill_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, accountType *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListChildren(ctx context.Context, accountID string) ([]domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) Resolve(ctx context.Context, accountID string, level domain.AccountLevel) (*domain.AccountScope, error) {
	args := m.Called(ctx, accountID, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountScope), args.Error(1)
}
func (m *MockAccountService) InvalidateAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedger(ctx context.Context, query domain.LedgerQuery) (*domain.LedgerResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerResult), args.Error(1)
}
func (m *MockLedgerService) ReconcileBankAccount(ctx context.Context, accountID string) (*domain.BankReconciliation, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliation), args.Error(1)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}
func (m *MockReportingService) CashFlow(ctx context.Context, startDate, endDate *time.Time) (*domain.CashFlowReport, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Test Suite Setup ---
type HandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockAccountService   *MockAccountService
	mockLedgerService    *MockLedgerService
	mockReportingService *MockReportingService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))

	suite.mockAccountService = new(MockAccountService)
	suite.mockLedgerService = new(MockLedgerService)
	suite.mockReportingService = new(MockReportingService)

	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Account:   suite.mockAccountService,
		Ledger:    suite.mockLedgerService,
		Reporting: suite.mockReportingService,
	})
}

func (suite *HandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.get("/health")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestGetAccount_Success() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, "CASH-1").Return(&domain.Account{
		AccountID: "CASH-1", Name: "Cash in hand", AccountType: domain.Cash, Level: domain.LevelLeaf,
		ParentAccountID: "SG-BOOKS", OpeningBalance: decimal.RequireFromString("1500.505"), BalanceType: domain.CreditNormal,
	}, nil)

	w := suite.get("/api/v1/accounts/CASH-1")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("CASH-1", body.AccountID)
	suite.Equal("1500.51", body.OpeningBalance)
	suite.Equal(domain.LevelLeaf, body.Level)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, "NOPE").
		Return(nil, fmt.Errorf("account NOPE: %w", apperrors.ErrNotFound))

	w := suite.get("/api/v1/accounts/NOPE")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListAccounts_FiltersByType() {
	bank := domain.Bank
	suite.mockAccountService.On("ListAccounts", mock.Anything, &bank).
		Return([]domain.Account{{AccountID: "BANK-1", AccountType: domain.Bank}}, nil)

	w := suite.get("/api/v1/accounts?type=BANK")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Accounts, 1)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListAccounts_RejectsUnknownType() {
	w := suite.get("/api/v1/accounts?type=ASSET")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListChildren() {
	suite.mockAccountService.On("ListChildren", mock.Anything, "SG-1").
		Return([]domain.Account{{AccountID: "CUST-1"}, {AccountID: "CUST-2"}}, nil)

	w := suite.get("/api/v1/accounts/SG-1/children")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Accounts, 2)
}

func (suite *HandlerTestSuite) TestGetLedger_PassesQuery() {
	start, end := date(2024, 1, 1), date(2024, 1, 31)
	expected := domain.LedgerQuery{AccountID: "SG-1", Level: domain.LevelSubGroup, StartDate: &start, EndDate: &end}
	suite.mockLedgerService.On("GetLedger", mock.Anything, expected).Return(&domain.LedgerResult{
		Account:        domain.Account{AccountID: "SG-1", Level: domain.LevelSubGroup},
		Level:          domain.LevelSubGroup,
		AccountIDs:     []string{"CUST-1", "CUST-2", "SG-1"},
		StartDate:      &start,
		EndDate:        &end,
		OpeningBalance: decimal.NewFromInt(50),
		Transactions: []domain.Posting{{
			AccountID: "CUST-1", Date: date(2024, 1, 3), SourceType: domain.SourceSale, EntryType: domain.Debit,
			Amount: decimal.NewFromInt(500), RunningBalance: decimal.NewFromInt(550),
		}},
		TotalDebit:     decimal.NewFromInt(500),
		TotalCredit:    decimal.Zero,
		ClosingBalance: decimal.NewFromInt(550),
		FailedSources:  []domain.SourceName{domain.SourceNameBank},
		Warnings:       []domain.SourceWarning{{Source: domain.SourceNameBank, Message: "source bank timed out"}},
	}, nil)

	w := suite.get("/api/v1/ledger/SG-1?level=2&startDate=2024-01-01&endDate=2024-01-31")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.LedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("50.00", body.OpeningBalance)
	suite.Equal("550.00", body.ClosingBalance)
	suite.True(body.Partial)
	suite.Require().Len(body.Transactions, 1)
	suite.Equal("550.00", body.Transactions[0].RunningBalance)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetLedger_BadParameters() {
	for _, path := range []string{
		"/api/v1/ledger/SG-1?level=4",
		"/api/v1/ledger/SG-1?startDate=01-01-2024",
		"/api/v1/ledger/SG-1?endDate=2024-13-01",
	} {
		w := suite.get(path)
		suite.Equal(http.StatusBadRequest, w.Code, path)
	}
	suite.mockLedgerService.AssertNotCalled(suite.T(), "GetLedger", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetLedger_ErrorMapping() {
	cases := []struct {
		account string
		err     error
		status  int
	}{
		{"RANGE", apperrors.ErrInvalidDateRange, http.StatusBadRequest},
		{"MISSING", fmt.Errorf("account MISSING: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"AMBIGUOUS", fmt.Errorf("account AMBIGUOUS: %w", apperrors.ErrAmbiguousLevel), http.StatusUnprocessableEntity},
		{"DOWN", apperrors.NewAppError(http.StatusServiceUnavailable, "bank log unavailable", nil), http.StatusServiceUnavailable},
		{"BROKEN", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.mockLedgerService.On("GetLedger", mock.Anything, domain.LedgerQuery{AccountID: tc.account}).Return(nil, tc.err)

		w := suite.get("/api/v1/ledger/" + tc.account)

		suite.Equal(tc.status, w.Code, tc.account)
	}
}

func (suite *HandlerTestSuite) TestReconcileBank() {
	suite.mockLedgerService.On("ReconcileBankAccount", mock.Anything, "BANK-1").Return(&domain.BankReconciliation{
		Account:    domain.Account{AccountID: "BANK-1"},
		RowsCount:  3,
		Balance:    decimal.NewFromInt(1100),
		Mismatches: []domain.BalanceMismatch{},
	}, nil)

	w := suite.get("/api/v1/ledger/BANK-1/reconciliation")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.BankReconciliationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Reconciled)
	suite.Equal("1100.00", body.Balance)
}

func (suite *HandlerTestSuite) TestTrialBalance() {
	suite.mockReportingService.On("TrialBalance", mock.Anything, date(2024, 1, 31)).Return(&domain.TrialBalanceReport{
		AsOf: date(2024, 1, 31),
		Rows: []domain.TrialBalanceRow{
			{AccountID: "G-1", Level: domain.LevelGroup, Debit: decimal.NewFromInt(380)},
		},
		TotalDebit:  decimal.NewFromInt(380),
		TotalCredit: decimal.Zero,
	}, nil)

	w := suite.get("/api/v1/reports/trial-balance?asOf=2024-01-31")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2024-01-31", body.AsOf)
	suite.Equal("380.00", body.Totals.Debit)
}

func (suite *HandlerTestSuite) TestTrialBalance_BadDate() {
	w := suite.get("/api/v1/reports/trial-balance?asOf=yesterday")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCashFlow_InvalidRange() {
	from, to := date(2024, 2, 1), date(2024, 1, 1)
	suite.mockReportingService.On("CashFlow", mock.Anything, &from, &to).Return(nil, apperrors.ErrInvalidDateRange)

	w := suite.get("/api/v1/reports/cash-flow?fromDate=2024-02-01&toDate=2024-01-01")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCashFlow_Success() {
	from, to := date(2024, 1, 1), date(2024, 1, 31)
	suite.mockReportingService.On("CashFlow", mock.Anything, &from, &to).Return(&domain.CashFlowReport{
		StartDate:      &from,
		EndDate:        &to,
		Inflows:        []domain.CashFlowLine{{SourceType: domain.SourcePaymentReceived, Amount: decimal.NewFromInt(500), Count: 1}},
		OpeningBalance: decimal.NewFromInt(500),
		TotalInflow:    decimal.NewFromInt(500),
		TotalOutflow:   decimal.NewFromInt(120),
		ClosingBalance: decimal.NewFromInt(880),
	}, nil)

	w := suite.get("/api/v1/reports/cash-flow?fromDate=2024-01-01&toDate=2024-01-31")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.CashFlowResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("880.00", body.Summary.ClosingBalance)
	suite.Len(body.Inflows, 1)
	suite.Empty(body.Outflows)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
