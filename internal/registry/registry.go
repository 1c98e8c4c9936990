// Package registry holds the in-memory authoritative collections of events and
// registrations and the derived views built from them.
//
// A Registry is not safe for concurrent use; its owner serializes access.
package registry

import (
	"time"

	"github.com/google/uuid"

	"freelancercheckin/internal/domain"
)

// Option configures a Registry.
type Option func(*Registry)

// WithIDGenerator overrides the id source used for new events and registrations.
func WithIDGenerator(next func() string) Option {
	return func(r *Registry) { r.newID = next }
}

// WithClock overrides the clock used to stamp registrations.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// Registry holds events (most recent first) and registrations (insertion order).
type Registry struct {
	events        []domain.Event
	registrations []domain.Registration

	eventIDs        map[string]struct{}
	registrationIDs map[string]struct{}

	newID func() string
	now   func() time.Time
}

// New returns a Registry seeded with copies of the given collections.
func New(events []domain.Event, registrations []domain.Registration, opts ...Option) *Registry {
	r := &Registry{
		events:          make([]domain.Event, 0, len(events)),
		registrations:   make([]domain.Registration, 0, len(registrations)),
		eventIDs:        make(map[string]struct{}, len(events)),
		registrationIDs: make(map[string]struct{}, len(registrations)),
		newID:           uuid.NewString,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, ev := range events {
		r.events = append(r.events, ev)
		r.eventIDs[ev.ID] = struct{}{}
	}
	for _, reg := range registrations {
		r.registrations = append(r.registrations, reg)
		r.registrationIDs[reg.ID] = struct{}{}
		// ids of removed events stay taken while registrations reference them
		r.eventIDs[reg.EventID] = struct{}{}
	}
	return r
}

// uniqueID draws ids until one is not in taken.
func (r *Registry) uniqueID(taken map[string]struct{}) string {
	for {
		id := r.newID()
		if _, dup := taken[id]; id != "" && !dup {
			return id
		}
	}
}

// AddEvent prepends the event so it becomes the most recent. An empty ID, or one
// already used by a live or removed event, is replaced by a fresh one.
// Field constraints are the caller's responsibility.
func (r *Registry) AddEvent(ev domain.Event) domain.Event {
	if _, taken := r.eventIDs[ev.ID]; ev.ID == "" || taken {
		ev.ID = r.uniqueID(r.eventIDs)
	}
	r.eventIDs[ev.ID] = struct{}{}
	r.events = append([]domain.Event{ev}, r.events...)
	return ev
}

// RemoveEvent deletes the event with the given id. It reports whether anything was removed.
// Registrations referencing the event are kept, and so the id is never handed out again.
func (r *Registry) RemoveEvent(id string) bool {
	kept := make([]domain.Event, 0, len(r.events))
	for _, ev := range r.events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	removed := len(kept) != len(r.events)
	r.events = kept
	return removed
}

// AddRegistration appends a new registration for the freelancer. It never fails:
// the event need not exist and the role may already be full.
func (r *Registry) AddRegistration(f domain.Freelancer, eventID string) domain.Registration {
	reg := domain.NewRegistration(f, eventID, r.now())
	reg.ID = r.uniqueID(r.registrationIDs)
	r.registrationIDs[reg.ID] = struct{}{}
	r.registrations = append(r.registrations, reg)
	return reg
}

// Event returns the event with the given id.
func (r *Registry) Event(id string) (domain.Event, bool) {
	for _, ev := range r.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return domain.Event{}, false
}

// Events returns a copy of the events, most recent first.
func (r *Registry) Events() []domain.Event {
	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Registrations returns a copy of the registrations in insertion order.
func (r *Registry) Registrations() []domain.Registration {
	out := make([]domain.Registration, len(r.registrations))
	copy(out, r.registrations)
	return out
}

// RegistrationCount returns the number of stored registrations.
func (r *Registry) RegistrationCount() int {
	return len(r.registrations)
}

// ResolveEventTitle returns the title of the event, or domain.RemovedEventTitle if it no longer exists.
func (r *Registry) ResolveEventTitle(eventID string) string {
	if ev, ok := r.Event(eventID); ok {
		return ev.Title
	}
	return domain.RemovedEventTitle
}
