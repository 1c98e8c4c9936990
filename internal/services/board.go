package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"freelancercheckin/internal/domain"
	"freelancercheckin/internal/registry"
)

// SnapshotStore loads and saves the persisted collections. Saves never fail the caller.
type SnapshotStore interface {
	LoadEvents(ctx context.Context) []domain.Event
	LoadRegistrations(ctx context.Context) []domain.Registration
	SaveEvents(ctx context.Context, events []domain.Event)
	SaveRegistrations(ctx context.Context, regs []domain.Registration)
}

type boardService struct {
	mu       sync.Mutex
	registry *registry.Registry

	creating atomic.Bool

	store     SnapshotStore
	generator domain.DescriptionGenerator
	notifier  domain.RegistrationNotifier
	logger    *slog.Logger
}

// NewBoardService loads both collections from store and returns the controller that owns them.
// notifier may be nil.
func NewBoardService(
	ctx context.Context,
	store SnapshotStore,
	generator domain.DescriptionGenerator,
	notifier domain.RegistrationNotifier,
	logger *slog.Logger,
	opts ...registry.Option,
) domain.BoardService {
	events := store.LoadEvents(ctx)
	regs := store.LoadRegistrations(ctx)
	logger.InfoContext(ctx, "board loaded", "events", len(events), "registrations", len(regs))
	return &boardService{
		registry:  registry.New(events, regs, opts...),
		store:     store,
		generator: generator,
		notifier:  notifier,
		logger:    logger,
	}
}

func invalidInput(errs []string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
}

func (s *boardService) CreateEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	if errs := draft.Validate(); len(errs) > 0 {
		return nil, invalidInput(errs)
	}
	if !s.creating.CompareAndSwap(false, true) {
		return nil, domain.ErrSubmissionInProgress
	}
	defer s.creating.Store(false)

	// The registry lock is not held while the generator runs.
	description := s.generator.Generate(ctx, draft.Facts())
	if err := ctx.Err(); err != nil {
		s.logger.InfoContext(ctx, "event creation abandoned", "title", draft.Title, "err", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ev := s.registry.AddEvent(draft.Event(description))
	s.store.SaveEvents(ctx, s.registry.Events())
	s.logger.InfoContext(ctx, "event created", "event_id", ev.ID, "title", ev.Title, "roles", len(ev.Roles))
	return &ev, nil
}

func (s *boardService) DeleteEvent(ctx context.Context, eventID string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.registry.RemoveEvent(eventID) {
		return nil
	}
	s.store.SaveEvents(ctx, s.registry.Events())
	s.logger.InfoContext(ctx, "event deleted", "event_id", eventID,
		"registrations_kept", s.registry.CountRegistrationsForEvent(eventID))
	return nil
}

func (s *boardService) ListEvents(ctx context.Context) []domain.EventSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.registry.Events()
	out := make([]domain.EventSummary, 0, len(events))
	for _, ev := range events {
		out = append(out, s.summary(ev))
	}
	return out
}

func (s *boardService) GetEvent(ctx context.Context, eventID string) (*domain.EventSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.registry.Event(eventID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	sum := s.summary(ev)
	return &sum, nil
}

func (s *boardService) summary(ev domain.Event) domain.EventSummary {
	return domain.EventSummary{
		Event:             ev,
		RegistrationCount: s.registry.CountRegistrationsForEvent(ev.ID),
		FormattedDate:     ev.FormattedDate(),
	}
}

// Register records the freelancer for a live event. The selected role is not checked
// against the event and full roles still accept registrations.
func (s *boardService) Register(ctx context.Context, eventID string, freelancer domain.Freelancer) (*domain.RegistrationReceipt, error) {
	if errs := freelancer.Validate(); len(errs) > 0 {
		return nil, invalidInput(errs)
	}

	s.mu.Lock()
	ev, ok := s.registry.Event(eventID)
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	reg := s.registry.AddRegistration(freelancer, eventID)
	s.store.SaveRegistrations(ctx, s.registry.Registrations())
	roleCount := 0
	for _, r := range s.registry.RegistrationsForEvent(eventID) {
		if r.SelectedRole == reg.SelectedRole {
			roleCount++
		}
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "registration received", "registration_id", reg.ID, "event_id", eventID, "role", reg.SelectedRole)

	if s.notifier != nil {
		if err := s.notifier.NotifyRegistration(ctx, ev, reg, roleCount); err != nil {
			s.logger.WarnContext(ctx, "registration notice not sent", "registration_id", reg.ID, "err", err)
		}
	}

	return &domain.RegistrationReceipt{
		Registration: reg,
		Message:      ConfirmationMessage(reg.Freelancer),
	}, nil
}

// ConfirmationMessage is the success text shown to a freelancer after registering.
func ConfirmationMessage(f domain.Freelancer) string {
	return fmt.Sprintf("Inscrição realizada com sucesso!\n\n%s foi inscrito(a) como %s.", f.FullName, f.SelectedRole)
}

func (s *boardService) EventRoster(ctx context.Context, eventID string) (*domain.EventRoster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	roster, ok := s.registry.Roster(eventID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &roster, nil
}

func (s *boardService) SearchRegistrants(ctx context.Context, term string) ([]domain.RegistrantRow, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Search(term), s.registry.RegistrationCount()
}
