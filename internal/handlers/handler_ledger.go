package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	"github.com/SscSPs/papermill_ledger/internal/dto"
	"github.com/SscSPs/papermill_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves account ledgers and bank reconciliations.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newLedgerHandler(ls portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/:accountID", h.getLedger)
		ledger.GET("/:accountID/reconciliation", h.reconcileBank)
	}
}

// getLedger godoc
// @Summary Get an account ledger
// @Description Builds the running-balance ledger of an account. Level 1 and 2 accounts aggregate every descendant.
// @Tags ledger
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   level query int false "Hierarchy level (1 group, 2 sub-group, 3 account); defaults to the stored level"
// @Param   startDate query string false "First day included (YYYY-MM-DD)"
// @Param   endDate query string false "Last day included (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or date range"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Account level could not be determined"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Router /ledger/{accountID} [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var params dto.LedgerQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(
		slog.String("account_id", accountID),
		slog.Int("level", params.Level),
		slog.String("start_date", params.StartDate),
		slog.String("end_date", params.EndDate),
	)
	logger.Info("Received request to build ledger")

	result, err := h.ledgerService.GetLedger(c.Request.Context(), params.ToLedgerQuery(accountID))
	if err != nil {
		respondError(c, logger, err, "Failed to build ledger")
		return
	}

	if result.IsPartial() {
		logger.Warn("Ledger built from partial sources", slog.Any("failed_sources", result.FailedSources))
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(result))
}

// reconcileBank godoc
// @Summary Reconcile a bank account
// @Description Replays the bank transaction log and lists rows whose stored balance differs from the recomputed one
// @Tags ledger
// @Produce  json
// @Param   accountID path string true "Bank account ID"
// @Success 200 {object} dto.BankReconciliationResponse
// @Failure 400 {object} map[string]string "Account is not a bank account"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to reconcile bank account"
// @Router /ledger/{accountID}/reconciliation [get]
func (h *ledgerHandler) reconcileBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	logger = logger.With(slog.String("account_id", accountID))

	rec, err := h.ledgerService.ReconcileBankAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile bank account")
		return
	}

	logger.Info("Bank account reconciled", slog.Int("rows", rec.RowsCount), slog.Int("mismatches", len(rec.Mismatches)))
	c.JSON(http.StatusOK, dto.ToBankReconciliationResponse(rec))
}
