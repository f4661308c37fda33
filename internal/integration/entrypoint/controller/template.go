package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radio-billing/backend/internal/application/usecase/template"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/integration/entrypoint/dto"
)

// TemplateController handles expense template endpoints.
type TemplateController struct {
	listUseCase   *template.ListTemplatesUseCase
	getUseCase    *template.GetTemplateUseCase
	createUseCase *template.CreateTemplateUseCase
	updateUseCase *template.UpdateTemplateUseCase
	deleteUseCase *template.DeleteTemplateUseCase
}

// NewTemplateController creates a new template controller instance.
func NewTemplateController(
	listUseCase *template.ListTemplatesUseCase,
	getUseCase *template.GetTemplateUseCase,
	createUseCase *template.CreateTemplateUseCase,
	updateUseCase *template.UpdateTemplateUseCase,
	deleteUseCase *template.DeleteTemplateUseCase,
) *TemplateController {
	return &TemplateController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /templates requests.
func (c *TemplateController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateListResponse(output.Templates))
}

// Get handles GET /templates/:id requests.
func (c *TemplateController) Get(ctx *gin.Context) {
	templateID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid template ID format",
		})
		return
	}

	tmpl, err := c.getUseCase.Execute(ctx.Request.Context(), template.GetTemplateInput{TemplateID: templateID})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateResponse(tmpl))
}

// Create handles POST /templates requests.
func (c *TemplateController) Create(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), template.CreateTemplateInput{Fields: fields})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTemplateResponse(output.Template))
}

// Update handles PATCH /templates/:id requests.
func (c *TemplateController) Update(ctx *gin.Context) {
	templateID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid template ID format",
		})
		return
	}

	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	input := template.UpdateTemplateInput{
		TemplateID: templateID,
		Fields:     fields,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateResponse(output.Template))
}

// Delete handles DELETE /templates/:id requests.
func (c *TemplateController) Delete(ctx *gin.Context) {
	templateID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid template ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), template.DeleteTemplateInput{TemplateID: templateID}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindFields parses the request body into template fields, writing a 400 on failure.
func (c *TemplateController) bindFields(ctx *gin.Context) (template.TemplateFields, bool) {
	var req dto.TemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTemplateFields),
		})
		return template.TemplateFields{}, false
	}

	validFrom, err := parseOptionalDate(req.ValidFrom)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid valid_from format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidValidityPeriod),
		})
		return template.TemplateFields{}, false
	}
	validTo, err := parseOptionalDate(req.ValidTo)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid valid_to format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidValidityPeriod),
		})
		return template.TemplateFields{}, false
	}

	return template.TemplateFields{
		PayeeName:     req.PayeeName,
		PayeeCode:     req.PayeeCode,
		Title:         req.Title,
		BaseAmount:    req.BaseAmount,
		PricingMode:   req.PricingMode,
		Weekdays:      req.Weekdays,
		ValidFrom:     validFrom,
		ValidTo:       validTo,
		PaymentTiming: req.PaymentTiming,
		Notes:         req.Notes,
	}, true
}
