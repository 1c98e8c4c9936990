// Package memory keeps named slots in process memory. Contents are lost on exit.
package memory

import (
	"context"
	"sync"

	"freelancercheckin/internal/domain"
)

// SlotRepository is a map-backed domain.SlotRepository.
type SlotRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewSlotRepository returns an empty SlotRepository.
func NewSlotRepository() *SlotRepository {
	return &SlotRepository{slots: make(map[string][]byte)}
}

func (r *SlotRepository) Get(_ context.Context, name string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payload, ok := r.slots[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), payload...), nil
}

func (r *SlotRepository) Put(_ context.Context, name string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[name] = append([]byte(nil), payload...)
	return nil
}
