package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/entity"
)

// CreateOrderRequest represents the request body for order contract registration.
type CreateOrderRequest struct {
	OrderType            string          `json:"order_type" binding:"required"`
	PayeeName            string          `json:"payee_name" binding:"required"`
	PayeeCode            string          `json:"payee_code"`
	Title                string          `json:"title"`
	PricingMode          string          `json:"pricing_mode"`
	BaseAmount           decimal.Decimal `json:"base_amount"`
	Weekdays             string          `json:"weekdays"`
	ContractStart        *string         `json:"contract_start,omitempty"`
	ContractEnd          *string         `json:"contract_end,omitempty"`
	SpotAmount           decimal.Decimal `json:"spot_amount"`
	ImplementationDate   *string         `json:"implementation_date,omitempty"`
	PaymentTiming        string          `json:"payment_timing"`
	OrderPlaced          bool            `json:"order_placed"`
	DocumentsDistributed bool            `json:"documents_distributed"`
}

// UpdateDocumentsRequest represents the request body for document flag updates.
type UpdateDocumentsRequest struct {
	OrderPlaced          *bool `json:"order_placed,omitempty"`
	DocumentsDistributed *bool `json:"documents_distributed,omitempty"`
}

// OrderResponse represents a single order contract in API responses.
type OrderResponse struct {
	ID                   int64     `json:"id"`
	OrderType            string    `json:"order_type"`
	PayeeName            string    `json:"payee_name"`
	PayeeCode            string    `json:"payee_code"`
	Title                string    `json:"title"`
	PricingMode          string    `json:"pricing_mode"`
	BaseAmount           string    `json:"base_amount"`
	Weekdays             []string  `json:"weekdays"`
	ContractStart        *string   `json:"contract_start,omitempty"`
	ContractEnd          *string   `json:"contract_end,omitempty"`
	SpotAmount           string    `json:"spot_amount"`
	ImplementationDate   *string   `json:"implementation_date,omitempty"`
	PaymentTiming        string    `json:"payment_timing"`
	OrderPlaced          bool      `json:"order_placed"`
	DocumentsDistributed bool      `json:"documents_distributed"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// OrderListResponse represents the response for listing order contracts.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToOrderResponse converts a domain OrderContract entity to an OrderResponse DTO.
func ToOrderResponse(o *entity.OrderContract) OrderResponse {
	return OrderResponse{
		ID:                   o.ID,
		OrderType:            string(o.OrderType),
		PayeeName:            o.Payee.Name,
		PayeeCode:            o.Payee.Code,
		Title:                o.Title,
		PricingMode:          string(o.PricingMode),
		BaseAmount:           o.BaseAmount.String(),
		Weekdays:             weekdayStrings(o.Weekdays),
		ContractStart:        formatOptionalDate(o.ContractStart),
		ContractEnd:          formatOptionalDate(o.ContractEnd),
		SpotAmount:           o.SpotAmount.String(),
		ImplementationDate:   formatOptionalDate(o.ImplementationDate),
		PaymentTiming:        string(o.Timing),
		OrderPlaced:          o.OrderPlaced,
		DocumentsDistributed: o.DocumentsDistributed,
		Status:               string(o.Status),
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

// ToOrderListResponse converts a slice of orders to a list response.
func ToOrderListResponse(orders []*entity.OrderContract) OrderListResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(o)
	}
	return OrderListResponse{Orders: responses}
}
