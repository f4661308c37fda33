package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radio-billing/backend/internal/application/usecase/reconciliation"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/integration/entrypoint/dto"
)

// ReconciliationController handles reconciliation endpoints.
type ReconciliationController struct {
	matchExpensesUseCase *reconciliation.MatchExpensesUseCase
	matchOrdersUseCase   *reconciliation.MatchOrdersUseCase
	resetUseCase         *reconciliation.ResetStatusUseCase
	getSummaryUseCase    *reconciliation.GetSummaryUseCase
}

// NewReconciliationController creates a new reconciliation controller instance.
func NewReconciliationController(
	matchExpensesUseCase *reconciliation.MatchExpensesUseCase,
	matchOrdersUseCase *reconciliation.MatchOrdersUseCase,
	resetUseCase *reconciliation.ResetStatusUseCase,
	getSummaryUseCase *reconciliation.GetSummaryUseCase,
) *ReconciliationController {
	return &ReconciliationController{
		matchExpensesUseCase: matchExpensesUseCase,
		matchOrdersUseCase:   matchOrdersUseCase,
		resetUseCase:         resetUseCase,
		getSummaryUseCase:    getSummaryUseCase,
	}
}

// MatchExpenses handles POST /reconciliation/expenses requests.
func (c *ReconciliationController) MatchExpenses(ctx *gin.Context) {
	output, err := c.matchExpensesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMatchResponse(output))
}

// MatchOrders handles POST /reconciliation/orders requests.
func (c *ReconciliationController) MatchOrders(ctx *gin.Context) {
	output, err := c.matchOrdersUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMatchResponse(output))
}

// Reset handles POST /reconciliation/reset requests.
func (c *ReconciliationController) Reset(ctx *gin.Context) {
	var req dto.ResetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidMatchKind),
		})
		return
	}

	input := reconciliation.ResetStatusInput{
		Kind:     entity.MatchKind(req.Kind),
		RecordID: req.RecordID,
	}

	output, err := c.resetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResetResponse(output))
}

// GetSummary handles GET /reconciliation/summary requests.
func (c *ReconciliationController) GetSummary(ctx *gin.Context) {
	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}
