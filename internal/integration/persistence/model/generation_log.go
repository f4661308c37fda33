// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/radio-billing/backend/internal/domain/entity"
)

// GenerationLogModel represents the generation_logs table in the database.
// At most one row exists per (template, generation month).
type GenerationLogModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	TemplateID      int64     `gorm:"not null;uniqueIndex:idx_generation_logs_template_month"`
	GenerationMonth string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_generation_logs_template_month"`
	ExpenseID       int64     `gorm:"not null;index"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the GenerationLogModel.
func (GenerationLogModel) TableName() string {
	return "generation_logs"
}

// ToEntity converts a GenerationLogModel to a domain GenerationLogEntry entity.
func (m *GenerationLogModel) ToEntity() *entity.GenerationLogEntry {
	return &entity.GenerationLogEntry{
		ID:              m.ID,
		TemplateID:      m.TemplateID,
		GenerationMonth: m.GenerationMonth,
		ExpenseID:       m.ExpenseID,
		CreatedAt:       m.CreatedAt,
	}
}

// GenerationLogFromEntity creates a GenerationLogModel from a domain GenerationLogEntry entity.
func GenerationLogFromEntity(e *entity.GenerationLogEntry) *GenerationLogModel {
	return &GenerationLogModel{
		ID:              e.ID,
		TemplateID:      e.TemplateID,
		GenerationMonth: e.GenerationMonth,
		ExpenseID:       e.ExpenseID,
		CreatedAt:       e.CreatedAt,
	}
}
