package domain

import "context"

// Names of the persisted collections.
const (
	EventsSlot        = "events"
	RegistrationsSlot = "registrations"
)

// SlotRepository stores serialized collections under fixed names.
// Get returns ErrNotFound when nothing has been stored under name.
type SlotRepository interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, payload []byte) error
}
