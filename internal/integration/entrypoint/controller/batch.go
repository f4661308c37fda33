package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radio-billing/backend/internal/application/usecase/batch"
	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/integration/entrypoint/dto"
)

// BatchController handles batch run lookup endpoints.
type BatchController struct {
	lastRunUseCase *batch.GetLastRunUseCase
}

// NewBatchController creates a new batch controller instance.
func NewBatchController(lastRunUseCase *batch.GetLastRunUseCase) *BatchController {
	return &BatchController{lastRunUseCase: lastRunUseCase}
}

// Last handles GET /batches/last?operation=... requests.
func (c *BatchController) Last(ctx *gin.Context) {
	operation := entity.BatchOperation(ctx.Query("operation"))
	if operation == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "operation query parameter is required",
		})
		return
	}

	output, err := c.lastRunUseCase.Execute(ctx.Request.Context(), batch.GetLastRunInput{Operation: operation})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLastRunResponse(output.Run))
}
