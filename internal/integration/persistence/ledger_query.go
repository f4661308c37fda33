// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// inMonth restricts a date column to one calendar month.
func inMonth(query *gorm.DB, column string, month valueobject.YearMonth) *gorm.DB {
	return query.Where(column+" >= ? AND "+column+" < ?", month.FirstDay(), month.AddMonths(1).FirstDay())
}

// countByStatus groups the rows of a ledger table by status.
func countByStatus(ctx context.Context, db *gorm.DB, table interface{}) (valueobject.StatusCounts, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := db.WithContext(ctx).
		Model(table).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return valueobject.StatusCounts{}, err
	}

	var counts valueobject.StatusCounts
	for _, row := range rows {
		switch entity.RecordStatus(row.Status) {
		case entity.StatusUnprocessed:
			counts.Unprocessed = row.Count
		case entity.StatusProcessing:
			counts.Processing = row.Count
		case entity.StatusMatched:
			counts.Matched = row.Count
		case entity.StatusCompleted:
			counts.Completed = row.Count
		}
	}
	return counts, nil
}

// markMatched moves one row to matched unless it already is.
func markMatched(tx *gorm.DB, table interface{}, label string, id int64) error {
	result := tx.Model(table).
		Where("id = ? AND status <> ?", id, string(entity.StatusMatched)).
		Updates(map[string]interface{}{
			"status":     string(entity.StatusMatched),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewPersistenceError(
			domainerror.ErrCodeAlreadyMatched,
			fmt.Sprintf("%s %d is missing or already matched", label, id),
			domainerror.ErrAlreadyMatched,
		)
	}
	return nil
}

// markUnprocessed returns rows to the matching pool.
func markUnprocessed(tx *gorm.DB, table interface{}, ids interface{}) error {
	return tx.Model(table).
		Where("id IN (?)", ids).
		Updates(map[string]interface{}{
			"status":     string(entity.StatusUnprocessed),
			"updated_at": time.Now().UTC(),
		}).Error
}
