package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/papermill_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAmbiguousLevel):
		return http.StatusUnprocessableEntity
	case errors.As(err, &appErr):
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes it to the client. Internal errors are reported with
// fallbackMsg only.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallbackMsg})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}
