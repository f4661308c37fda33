package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radio-billing/backend/internal/application/usecase/generation"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/integration/entrypoint/dto"
)

// GenerationController handles recurring expense generation endpoints.
type GenerationController struct {
	generateUseCase *generation.GenerateForMonthUseCase
	catchUpUseCase  *generation.GenerateMissingUseCase
}

// NewGenerationController creates a new generation controller instance.
func NewGenerationController(
	generateUseCase *generation.GenerateForMonthUseCase,
	catchUpUseCase *generation.GenerateMissingUseCase,
) *GenerationController {
	return &GenerationController{
		generateUseCase: generateUseCase,
		catchUpUseCase:  catchUpUseCase,
	}
}

// Run handles POST /generation/run requests.
func (c *GenerationController) Run(ctx *gin.Context) {
	var req dto.GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}

	input := generation.GenerateForMonthInput{
		Year:  req.Year,
		Month: req.Month,
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGenerationResponse(output))
}

// CatchUp handles POST /generation/catch-up requests.
// Only templates without an instance for the current month are generated.
func (c *GenerationController) CatchUp(ctx *gin.Context) {
	output, err := c.catchUpUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGenerationResponse(output))
}
