package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radio-billing/backend/internal/application/usecase/schedule"
	"github.com/radio-billing/backend/internal/integration/entrypoint/dto"
)

// ScheduleController handles order schedule projection endpoints.
type ScheduleController struct {
	projectUseCase      *schedule.ProjectScheduleUseCase
	completenessUseCase *schedule.GetCompletenessUseCase
}

// NewScheduleController creates a new schedule controller instance.
func NewScheduleController(
	projectUseCase *schedule.ProjectScheduleUseCase,
	completenessUseCase *schedule.GetCompletenessUseCase,
) *ScheduleController {
	return &ScheduleController{
		projectUseCase:      projectUseCase,
		completenessUseCase: completenessUseCase,
	}
}

// Project handles GET /schedule requests.
// Supports query parameter: month (YYYY-MM, occurrence month).
func (c *ScheduleController) Project(ctx *gin.Context) {
	month, err := parseMonthQuery(ctx)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	output, err := c.projectUseCase.Execute(ctx.Request.Context(), schedule.ProjectScheduleInput{Month: month})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScheduleResponse(output))
}

// Completeness handles GET /schedule/completeness requests.
// Supports query parameter: month (YYYY-MM, occurrence month).
func (c *ScheduleController) Completeness(ctx *gin.Context) {
	month, err := parseMonthQuery(ctx)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	output, err := c.completenessUseCase.Execute(ctx.Request.Context(), schedule.GetCompletenessInput{Month: month})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompletenessResponse(output))
}
