// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	PayeeName       string          `gorm:"type:varchar(255);not null"`
	PayeeCode       string          `gorm:"type:varchar(32);index"`
	Title           string          `gorm:"type:varchar(255)"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,0);not null"`
	PaymentDate     time.Time       `gorm:"type:date;not null;index"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	TemplateID      *int64          `gorm:"index"`
	GenerationMonth *string         `gorm:"type:varchar(7)"`
	Source          string          `gorm:"type:varchar(10);not null"`
	Timing          string          `gorm:"type:varchar(32)"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:              m.ID,
		Payee:           valueobject.PayeeIdentity{Name: m.PayeeName, Code: m.PayeeCode},
		Title:           m.Title,
		Amount:          m.Amount,
		PaymentDate:     m.PaymentDate.UTC(),
		Status:          entity.RecordStatus(m.Status),
		TemplateID:      m.TemplateID,
		GenerationMonth: m.GenerationMonth,
		Source:          entity.ExpenseSource(m.Source),
		Timing:          valueobject.PaymentTiming(m.Timing),
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(e *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:              e.ID,
		PayeeName:       e.Payee.Name,
		PayeeCode:       e.Payee.Code,
		Title:           e.Title,
		Amount:          e.Amount,
		PaymentDate:     e.PaymentDate,
		Status:          string(e.Status),
		TemplateID:      e.TemplateID,
		GenerationMonth: e.GenerationMonth,
		Source:          string(e.Source),
		Timing:          string(e.Timing),
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
