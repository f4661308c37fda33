// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/radio-billing/backend/internal/domain/entity"
)

// ReconciliationMatchModel represents the reconciliation_matches table in the database.
// A payment, an expense and an (order, occurrence month) obligation each appear at most once.
type ReconciliationMatchModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind            string    `gorm:"type:varchar(10);not null;index"`
	ExpenseID       *int64    `gorm:"uniqueIndex"`
	OrderID         *int64    `gorm:"uniqueIndex:idx_reconciliation_matches_order_month"`
	OccurrenceMonth *string   `gorm:"type:varchar(7);uniqueIndex:idx_reconciliation_matches_order_month"`
	PaymentID       int64     `gorm:"not null;uniqueIndex"`
	BatchRunID      uuid.UUID `gorm:"type:uuid;not null;index"`
	MatchedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the ReconciliationMatchModel.
func (ReconciliationMatchModel) TableName() string {
	return "reconciliation_matches"
}

// ToEntity converts a ReconciliationMatchModel to a domain ReconciliationMatch entity.
func (m *ReconciliationMatchModel) ToEntity() *entity.ReconciliationMatch {
	return &entity.ReconciliationMatch{
		ID:              m.ID,
		Kind:            entity.MatchKind(m.Kind),
		ExpenseID:       m.ExpenseID,
		OrderID:         m.OrderID,
		OccurrenceMonth: m.OccurrenceMonth,
		PaymentID:       m.PaymentID,
		BatchRunID:      m.BatchRunID,
		MatchedAt:       m.MatchedAt,
	}
}

// ReconciliationMatchFromEntity creates a ReconciliationMatchModel from a domain entity.
func ReconciliationMatchFromEntity(m *entity.ReconciliationMatch) *ReconciliationMatchModel {
	return &ReconciliationMatchModel{
		ID:              m.ID,
		Kind:            string(m.Kind),
		ExpenseID:       m.ExpenseID,
		OrderID:         m.OrderID,
		OccurrenceMonth: m.OccurrenceMonth,
		PaymentID:       m.PaymentID,
		BatchRunID:      m.BatchRunID,
		MatchedAt:       m.MatchedAt,
	}
}

// AllModels lists every table managed by AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&ExpenseTemplateModel{},
		&ExpenseModel{},
		&PaymentModel{},
		&OrderContractModel{},
		&GenerationLogModel{},
		&ReconciliationMatchModel{},
	}
}
