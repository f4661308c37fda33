// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// GenerationLogEntry marks that a template already produced an expense for a month.
// At most one entry exists per (TemplateID, GenerationMonth).
type GenerationLogEntry struct {
	ID              int64
	TemplateID      int64
	GenerationMonth string // YYYY-MM
	ExpenseID       int64
	CreatedAt       time.Time
}
