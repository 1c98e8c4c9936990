// Package repository loads and saves the event and registration collections
// as JSON snapshots in named slots.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"freelancercheckin/internal/domain"
)

// SnapshotStore is the write-through persistence adapter. Reads fall back to
// defaults and writes never fail the caller; problems are only logged.
type SnapshotStore struct {
	slots  domain.SlotRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewSnapshotStore returns a SnapshotStore over slots.
func NewSnapshotStore(slots domain.SlotRepository, logger *slog.Logger) *SnapshotStore {
	return &SnapshotStore{slots: slots, logger: logger, now: time.Now}
}

// LoadEvents returns the stored events, or the seed event when the slot is absent or unreadable.
func (s *SnapshotStore) LoadEvents(ctx context.Context) []domain.Event {
	var events []domain.Event
	if !s.load(ctx, domain.EventsSlot, &events) {
		return []domain.Event{domain.SeedEvent(s.now())}
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events
}

// LoadRegistrations returns the stored registrations, or none when the slot is absent or unreadable.
func (s *SnapshotStore) LoadRegistrations(ctx context.Context) []domain.Registration {
	var regs []domain.Registration
	if !s.load(ctx, domain.RegistrationsSlot, &regs) || regs == nil {
		return []domain.Registration{}
	}
	return regs
}

// SaveEvents writes the events slot.
func (s *SnapshotStore) SaveEvents(ctx context.Context, events []domain.Event) {
	s.save(ctx, domain.EventsSlot, events)
}

// SaveRegistrations writes the registrations slot.
func (s *SnapshotStore) SaveRegistrations(ctx context.Context, regs []domain.Registration) {
	s.save(ctx, domain.RegistrationsSlot, regs)
}

// load decodes the slot into dest and reports whether stored data was used.
func (s *SnapshotStore) load(ctx context.Context, slot string, dest any) bool {
	payload, err := s.slots.Get(ctx, slot)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.DebugContext(ctx, "slot empty, using default", "slot", slot)
		return false
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read slot, using default", "slot", slot, "err", err)
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		s.logger.WarnContext(ctx, "corrupt slot, using default", "slot", slot, "err", err)
		return false
	}
	return true
}

// save runs to completion even if ctx is cancelled once the caller's request ends.
func (s *SnapshotStore) save(ctx context.Context, slot string, v any) {
	ctx = context.WithoutCancel(ctx)
	payload, err := json.Marshal(v)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode slot", "slot", slot, "err", err)
		return
	}
	if err := s.slots.Put(ctx, slot, payload); err != nil {
		s.logger.ErrorContext(ctx, "failed to write slot", "slot", slot, "err", err)
	}
}
