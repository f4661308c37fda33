package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radio-billing/backend/internal/application/usecase/payment"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/integration/entrypoint/dto"
	"github.com/radio-billing/backend/internal/integration/paymentcsv"
)

// PaymentController handles payment record endpoints.
type PaymentController struct {
	listUseCase   *payment.ListPaymentsUseCase
	importUseCase *payment.ImportPaymentsUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	listUseCase *payment.ListPaymentsUseCase,
	importUseCase *payment.ImportPaymentsUseCase,
) *PaymentController {
	return &PaymentController{
		listUseCase:   listUseCase,
		importUseCase: importUseCase,
	}
}

// List handles GET /payments requests.
// Supports query parameters: status, month (YYYY-MM).
func (c *PaymentController) List(ctx *gin.Context) {
	input := payment.ListPaymentsInput{
		Status:       ctx.Query("status"),
		PaymentMonth: ctx.Query("month"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(output.Payments))
}

// Import handles POST /payments/import requests.
// Accepts either a JSON body of rows or a multipart CSV upload in the "file" field
// with "mode" and optional "encoding" form values.
func (c *PaymentController) Import(ctx *gin.Context) {
	var input payment.ImportPaymentsInput

	if ctx.ContentType() == "multipart/form-data" {
		rows, ok := c.readUpload(ctx)
		if !ok {
			return
		}
		input = payment.ImportPaymentsInput{
			Mode: payment.ImportMode(ctx.PostForm("mode")),
			Rows: rows,
		}
	} else {
		var req dto.ImportPaymentsRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
				Code:  string(domainerror.ErrCodeInvalidImportMode),
			})
			return
		}
		input = payment.ImportPaymentsInput{
			Mode: payment.ImportMode(req.Mode),
			Rows: dto.ToPaymentRows(req.Rows),
		}
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportPaymentsResponse(output))
}

func (c *PaymentController) readUpload(ctx *gin.Context) ([]payment.PaymentRow, bool) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "CSV file is required",
			Code:  string(domainerror.ErrCodeInvalidImportRow),
		})
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		handleDomainError(ctx, err)
		return nil, false
	}
	defer file.Close()

	rows, err := paymentcsv.Read(file, ctx.PostForm("encoding"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Failed to read CSV file",
			Code:    string(domainerror.ErrCodeInvalidImportRow),
			Details: err.Error(),
		})
		return nil, false
	}
	return rows, true
}
