// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/integration/entrypoint/dto"
)

// handleDomainError maps typed domain errors to HTTP status codes.
func handleDomainError(ctx *gin.Context, err error) {
	var (
		templateErr    *domainerror.TemplateError
		ledgerErr      *domainerror.LedgerError
		configErr      *domainerror.ConfigurationError
		calendarErr    *domainerror.CalendarError
		persistenceErr *domainerror.PersistenceError
	)

	switch {
	case errors.As(err, &templateErr):
		respondError(ctx, statusForTemplateError(templateErr.Code), templateErr.Message, string(templateErr.Code))
	case errors.As(err, &ledgerErr):
		respondError(ctx, statusForLedgerError(ledgerErr.Code), ledgerErr.Message, string(ledgerErr.Code))
	case errors.As(err, &configErr):
		respondError(ctx, http.StatusBadRequest, configErr.Message, string(configErr.Code))
	case errors.As(err, &calendarErr):
		respondError(ctx, http.StatusBadRequest, calendarErr.Message, string(calendarErr.Code))
	case errors.As(err, &persistenceErr) && persistenceErr.Code == domainerror.ErrCodeAlreadyMatched:
		respondError(ctx, http.StatusConflict, persistenceErr.Message, string(persistenceErr.Code))
	default:
		slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func respondError(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// statusForTemplateError maps template error codes to HTTP status codes.
func statusForTemplateError(code domainerror.TemplateErrorCode) int {
	switch code {
	case domainerror.ErrCodeTemplateNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTemplateAmount,
		domainerror.ErrCodeMissingPayeeName,
		domainerror.ErrCodeInvalidValidityPeriod,
		domainerror.ErrCodeInvalidTemplatePricing,
		domainerror.ErrCodeMissingTemplateFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForLedgerError maps ledger error codes to HTTP status codes.
func statusForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodePaymentNotFound,
		domainerror.ErrCodeOrderNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotMatched,
		domainerror.ErrCodeGeneratedFieldLocked:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidStatus,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidImportRow,
		domainerror.ErrCodeInvalidImportMode,
		domainerror.ErrCodeInvalidOrderType,
		domainerror.ErrCodeMissingLedgerFields,
		domainerror.ErrCodeInvalidMatchKind:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
