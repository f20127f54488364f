package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"move-calculator/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository. Records live only for the lifetime of the process.
type CalculationRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation store.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []domain.CalculationRecord{},
	}
}

// Save stores the record, assigning an ID and timestamp when missing.
func (r *CalculationRepositoryMemory) Save(record domain.CalculationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, record)
	return nil
}

// All returns a copy of every stored record, oldest first.
func (r *CalculationRepositoryMemory) All() []domain.CalculationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.CalculationRecord, len(r.data))
	copy(out, r.data)
	return out
}
