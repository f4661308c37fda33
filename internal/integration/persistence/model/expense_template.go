// Package model defines database models for persistence layer.
package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// ExpenseTemplateModel represents the expense_templates table in the database.
type ExpenseTemplateModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	PayeeName   string          `gorm:"type:varchar(255);not null"`
	PayeeCode   string          `gorm:"type:varchar(32);index"`
	Title       string          `gorm:"type:varchar(255)"`
	BaseAmount  decimal.Decimal `gorm:"type:decimal(15,0);not null"`
	PricingMode string          `gorm:"type:varchar(20);not null"`
	Weekdays    string          `gorm:"type:varchar(32)"` // e.g. "月,水,金"
	ValidFrom   *time.Time      `gorm:"type:date"`
	ValidTo     *time.Time      `gorm:"type:date"`
	Timing      string          `gorm:"type:varchar(32);not null"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ExpenseTemplateModel.
func (ExpenseTemplateModel) TableName() string {
	return "expense_templates"
}

// ToEntity converts an ExpenseTemplateModel to a domain ExpenseTemplate entity.
func (m *ExpenseTemplateModel) ToEntity() *entity.ExpenseTemplate {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.ExpenseTemplate{
		ID:          m.ID,
		Payee:       valueobject.PayeeIdentity{Name: m.PayeeName, Code: m.PayeeCode},
		Title:       m.Title,
		BaseAmount:  m.BaseAmount,
		PricingMode: valueobject.PricingMode(m.PricingMode),
		Weekdays:    weekdaysFromColumn(m.Weekdays),
		ValidFrom:   m.ValidFrom,
		ValidTo:     m.ValidTo,
		Timing:      valueobject.PaymentTiming(m.Timing),
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// ExpenseTemplateFromEntity creates an ExpenseTemplateModel from a domain ExpenseTemplate entity.
func ExpenseTemplateFromEntity(t *entity.ExpenseTemplate) *ExpenseTemplateModel {
	var deletedAt gorm.DeletedAt
	if t.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
	}

	return &ExpenseTemplateModel{
		ID:          t.ID,
		PayeeName:   t.Payee.Name,
		PayeeCode:   t.Payee.Code,
		Title:       t.Title,
		BaseAmount:  t.BaseAmount,
		PricingMode: string(t.PricingMode),
		Weekdays:    t.Weekdays.String(),
		ValidFrom:   t.ValidFrom,
		ValidTo:     t.ValidTo,
		Timing:      string(t.Timing),
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// weekdaysFromColumn parses a stored comma separated weekday list. Unrecognized tokens
// are kept so pricing the record fails with ErrUnknownWeekday for that record alone.
func weekdaysFromColumn(s string) valueobject.WeekdaySet {
	if set, err := valueobject.ParseWeekdaySet(s); err == nil {
		return set
	}

	var days []valueobject.Weekday
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if wd, err := valueobject.ParseWeekday(token); err == nil {
			days = append(days, wd)
		} else {
			days = append(days, valueobject.Weekday(token))
		}
	}
	return valueobject.NewWeekdaySet(days...)
}
