package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radio-billing/backend/internal/application/usecase/order"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/integration/entrypoint/dto"
)

// OrderController handles order contract endpoints.
type OrderController struct {
	listUseCase      *order.ListOrdersUseCase
	createUseCase    *order.CreateOrderUseCase
	documentsUseCase *order.UpdateDocumentsUseCase
}

// NewOrderController creates a new order controller instance.
func NewOrderController(
	listUseCase *order.ListOrdersUseCase,
	createUseCase *order.CreateOrderUseCase,
	documentsUseCase *order.UpdateDocumentsUseCase,
) *OrderController {
	return &OrderController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		documentsUseCase: documentsUseCase,
	}
}

// List handles GET /orders requests.
func (c *OrderController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(output.Orders))
}

// Create handles POST /orders requests.
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	// Parse optional dates
	contractStart, err := parseOptionalDate(req.ContractStart)
	if err != nil {
		c.invalidDate(ctx, "contract_start")
		return
	}
	contractEnd, err := parseOptionalDate(req.ContractEnd)
	if err != nil {
		c.invalidDate(ctx, "contract_end")
		return
	}
	implementationDate, err := parseOptionalDate(req.ImplementationDate)
	if err != nil {
		c.invalidDate(ctx, "implementation_date")
		return
	}

	input := order.CreateOrderInput{
		OrderType:            req.OrderType,
		PayeeName:            req.PayeeName,
		PayeeCode:            req.PayeeCode,
		Title:                req.Title,
		PricingMode:          req.PricingMode,
		BaseAmount:           req.BaseAmount,
		Weekdays:             req.Weekdays,
		ContractStart:        contractStart,
		ContractEnd:          contractEnd,
		SpotAmount:           req.SpotAmount,
		ImplementationDate:   implementationDate,
		PaymentTiming:        req.PaymentTiming,
		OrderPlaced:          req.OrderPlaced,
		DocumentsDistributed: req.DocumentsDistributed,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(output.Order))
}

// UpdateDocuments handles PATCH /orders/:id/documents requests.
func (c *OrderController) UpdateDocuments(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid order ID format",
		})
		return
	}

	var req dto.UpdateDocumentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := order.UpdateDocumentsInput{
		OrderID:              orderID,
		OrderPlaced:          req.OrderPlaced,
		DocumentsDistributed: req.DocumentsDistributed,
	}

	output, err := c.documentsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(output.Order))
}

func (c *OrderController) invalidDate(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid " + field + " format. Use YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidDate),
	})
}
