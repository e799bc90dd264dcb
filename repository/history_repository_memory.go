package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/joeyg6393/fincalcs/domain"
)

// HistoryRepositoryMemory is an in-memory implementation of HistoryRepository.
type HistoryRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.HistoryRecord
}

// NewHistoryRepositoryMemory creates a new in-memory history repository.
func NewHistoryRepositoryMemory() *HistoryRepositoryMemory {
	return &HistoryRepositoryMemory{
		data: []domain.HistoryRecord{},
	}
}

// Save stores the record in memory.
func (r *HistoryRepositoryMemory) Save(_ context.Context, rec domain.HistoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, rec)
	return nil
}

func (r *HistoryRepositoryMemory) List(_ context.Context, calculator string, limit int) ([]domain.HistoryRecord, error) {
	limit = normalizeLimit(limit)

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest insertion first, so records sharing a timestamp keep that order
	// after the stable sort.
	out := []domain.HistoryRecord{}
	for i := len(r.data) - 1; i >= 0; i-- {
		if calculator != "" && r.data[i].Calculator != calculator {
			continue
		}
		out = append(out, r.data[i])
	}
	slices.SortStableFunc(out, func(a, b domain.HistoryRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
