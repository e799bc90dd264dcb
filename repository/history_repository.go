package repository

import (
	"context"

	"github.com/joeyg6393/fincalcs/domain"
)

// DefaultHistoryLimit caps List when the caller passes a non-positive limit.
const DefaultHistoryLimit = 50

// HistoryRepository persists calculator runs.
type HistoryRepository interface {
	Save(ctx context.Context, rec domain.HistoryRecord) error
	// List returns the most recent records first. An empty calculator
	// matches every calculator.
	List(ctx context.Context, calculator string, limit int) ([]domain.HistoryRecord, error)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return limit
}
