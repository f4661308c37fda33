// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/radio-billing/backend/internal/domain/entity"
)

// ReconciliationRepository defines the interface for committing and reverting pairings.
type ReconciliationRepository interface {
	// CommitExpenseMatch marks the expense and payment matched and stores the pairing
	// in one transaction. If either record is already matched nothing is written and
	// a PersistenceError wrapping ErrAlreadyMatched is returned.
	CommitExpenseMatch(ctx context.Context, match *entity.ReconciliationMatch) error

	// CommitOrderMatch marks the payment matched and stores the (order, month) pairing
	// in one transaction, with the same guard as CommitExpenseMatch.
	CommitOrderMatch(ctx context.Context, match *entity.ReconciliationMatch) error

	// FindOrderMatches retrieves every order pairing.
	FindOrderMatches(ctx context.Context) ([]*entity.ReconciliationMatch, error)

	// FindByRecord retrieves the pairings that involve the record.
	FindByRecord(ctx context.Context, kind entity.MatchKind, recordID int64) ([]*entity.ReconciliationMatch, error)

	// Reset removes the pairings of the record and returns every involved record
	// to unprocessed in one transaction. Returns the number of pairings removed.
	Reset(ctx context.Context, kind entity.MatchKind, recordID int64) (int, error)
}
