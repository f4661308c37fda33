// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// OrderContractModel represents the order_contracts table in the database.
type OrderContractModel struct {
	ID                   int64           `gorm:"primaryKey;autoIncrement"`
	PayeeName            string          `gorm:"type:varchar(255);not null"`
	PayeeCode            string          `gorm:"type:varchar(32);index"`
	Title                string          `gorm:"type:varchar(255)"`
	OrderType            string          `gorm:"type:varchar(10);not null"`
	PricingMode          string          `gorm:"type:varchar(20)"`
	BaseAmount           decimal.Decimal `gorm:"type:decimal(15,0)"`
	Weekdays             string          `gorm:"type:varchar(32)"`
	ContractStart        *time.Time      `gorm:"type:date"`
	ContractEnd          *time.Time      `gorm:"type:date"`
	SpotAmount           decimal.Decimal `gorm:"type:decimal(15,0)"`
	ImplementationDate   *time.Time      `gorm:"type:date"`
	Timing               string          `gorm:"type:varchar(32);not null"`
	OrderPlaced          bool            `gorm:"default:false"`
	DocumentsDistributed bool            `gorm:"default:false"`
	Status               string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt            time.Time       `gorm:"not null"`
	UpdatedAt            time.Time       `gorm:"not null"`
}

// TableName returns the table name for the OrderContractModel.
func (OrderContractModel) TableName() string {
	return "order_contracts"
}

// ToEntity converts an OrderContractModel to a domain OrderContract entity.
func (m *OrderContractModel) ToEntity() *entity.OrderContract {
	return &entity.OrderContract{
		ID:                   m.ID,
		Payee:                valueobject.PayeeIdentity{Name: m.PayeeName, Code: m.PayeeCode},
		Title:                m.Title,
		OrderType:            entity.OrderType(m.OrderType),
		PricingMode:          valueobject.PricingMode(m.PricingMode),
		BaseAmount:           m.BaseAmount,
		Weekdays:             weekdaysFromColumn(m.Weekdays),
		ContractStart:        m.ContractStart,
		ContractEnd:          m.ContractEnd,
		SpotAmount:           m.SpotAmount,
		ImplementationDate:   m.ImplementationDate,
		Timing:               valueobject.PaymentTiming(m.Timing),
		OrderPlaced:          m.OrderPlaced,
		DocumentsDistributed: m.DocumentsDistributed,
		Status:               entity.RecordStatus(m.Status),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// OrderContractFromEntity creates an OrderContractModel from a domain OrderContract entity.
func OrderContractFromEntity(o *entity.OrderContract) *OrderContractModel {
	return &OrderContractModel{
		ID:                   o.ID,
		PayeeName:            o.Payee.Name,
		PayeeCode:            o.Payee.Code,
		Title:                o.Title,
		OrderType:            string(o.OrderType),
		PricingMode:          string(o.PricingMode),
		BaseAmount:           o.BaseAmount,
		Weekdays:             o.Weekdays.String(),
		ContractStart:        o.ContractStart,
		ContractEnd:          o.ContractEnd,
		SpotAmount:           o.SpotAmount,
		ImplementationDate:   o.ImplementationDate,
		Timing:               string(o.Timing),
		OrderPlaced:          o.OrderPlaced,
		DocumentsDistributed: o.DocumentsDistributed,
		Status:               string(o.Status),
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
