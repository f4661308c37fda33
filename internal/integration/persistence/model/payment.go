// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Subject     string          `gorm:"type:varchar(255)"`
	PayeeName   string          `gorm:"type:varchar(255);not null"`
	PayeeCode   string          `gorm:"type:varchar(32);index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,0);not null"`
	PaymentDate time.Time       `gorm:"type:date;not null;index"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	ImportedAt  time.Time       `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:          m.ID,
		Subject:     m.Subject,
		Payee:       valueobject.PayeeIdentity{Name: m.PayeeName, Code: m.PayeeCode},
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate.UTC(),
		Status:      entity.RecordStatus(m.Status),
		ImportedAt:  m.ImportedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(p *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:          p.ID,
		Subject:     p.Subject,
		PayeeName:   p.Payee.Name,
		PayeeCode:   p.Payee.Code,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Status:      string(p.Status),
		ImportedAt:  p.ImportedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
