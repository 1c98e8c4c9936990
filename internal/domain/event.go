package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Date and time layouts used by the event form fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	displayDateLayout = "02/01/2006"
	noDateLabel       = "Data não informada"
)

// RemovedEventTitle is shown wherever a registration references an event that no longer exists.
const RemovedEventTitle = "Evento Removido"

// Role is one open position within an event.
// Vacancies is informational: registrations are never blocked once it is reached.
// swagger:model Role
type Role struct {
	Title     string `json:"title"`
	Vacancies int    `json:"vacancies"`
	Value     string `json:"value,omitempty"` // compensation, e.g. "R$ 150,00"
}

// Event is an organizer-published staffing opportunity.
// swagger:model Event
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Roles       []Role `json:"roles"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// FormattedDate renders Date as dd/mm/yyyy, or a placeholder when it is missing or malformed.
func (e Event) FormattedDate() string {
	if e.Date == "" {
		return noDateLabel
	}
	d, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return noDateLabel
	}
	return d.Format(displayDateLayout)
}

// Facts returns the subset of the event handed to the description generator.
func (e Event) Facts() EventFacts {
	return EventFacts{
		Title:     e.Title,
		Date:      e.Date,
		Location:  e.Location,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Roles:     e.Roles,
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateClock(field, value string) []string {
	if isBlank(value) {
		return []string{field + " is required"}
	}
	if _, err := time.Parse(TimeLayout, value); err != nil {
		return []string{field + " must be in HH:MM format"}
	}
	return nil
}

// EventDraft is the organizer's input for a new event. ID and Description are assigned on creation.
type EventDraft struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Roles     []Role `json:"roles"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// Validate returns the list of problems that block creation; empty means the draft is complete.
func (d EventDraft) Validate() []string {
	var errs []string
	if isBlank(d.Title) {
		errs = append(errs, "title is required")
	}
	if isBlank(d.Location) {
		errs = append(errs, "location is required")
	}
	if isBlank(d.Date) {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(DateLayout, d.Date); err != nil {
		errs = append(errs, "date must be in YYYY-MM-DD format")
	}
	errs = append(errs, validateClock("startTime", d.StartTime)...)
	errs = append(errs, validateClock("endTime", d.EndTime)...)
	if len(d.Roles) == 0 {
		errs = append(errs, "at least one role is required")
	}
	seen := make(map[string]int, len(d.Roles))
	for i, r := range d.Roles {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			errs = append(errs, fmt.Sprintf("roles[%d].title is required", i))
		} else if first, dup := seen[title]; dup {
			errs = append(errs, fmt.Sprintf("roles[%d].title duplicates roles[%d]", i, first))
		} else {
			seen[title] = i
		}
		if r.Vacancies < 0 {
			errs = append(errs, fmt.Sprintf("roles[%d].vacancies must not be negative", i))
		}
	}
	return errs
}

// Event builds the event described by the draft with the given description. ID is left empty.
func (d EventDraft) Event(description string) Event {
	roles := make([]Role, len(d.Roles))
	copy(roles, d.Roles)
	return Event{
		Title:       d.Title,
		Description: description,
		Date:        d.Date,
		Location:    d.Location,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Roles:       roles,
		ImageURL:    d.ImageURL,
	}
}

// Facts returns the generator input for the draft.
func (d EventDraft) Facts() EventFacts {
	return d.Event("").Facts()
}

// EventFacts is the structured input of the description generator.
type EventFacts struct {
	Title     string
	Date      string
	Location  string
	StartTime string
	EndTime   string
	Roles     []Role
}

// EventSummary is one row of the event board.
// swagger:model EventSummary
type EventSummary struct {
	Event             Event  `json:"event"`
	RegistrationCount int    `json:"registration_count"`
	FormattedDate     string `json:"formatted_date"`
}

// RoleGroup holds the registrations of one role, sorted by full name.
// swagger:model RoleGroup
type RoleGroup struct {
	Role          Role           `json:"role"`
	Registrations []Registration `json:"registrations"`
	Full          bool           `json:"full"`
}

// EventRoster is the per-event registrant list grouped by role.
// Unmatched counts registrations whose selected role matches none of the event's roles.
// swagger:model EventRoster
type EventRoster struct {
	Event     Event       `json:"event"`
	Total     int         `json:"total"`
	Groups    []RoleGroup `json:"groups"`
	Unmatched int         `json:"unmatched"`
}

// SeedEvent returns the example event offered on first run.
func SeedEvent(today time.Time) Event {
	return Event{
		ID:        "demo-1",
		Title:     "Rock in Rio",
		Location:  "Estádio Mineirão",
		Date:      today.Format(DateLayout),
		StartTime: "12:00",
		EndTime:   "00:00",
		Roles: []Role{
			{Title: "Atendente de Bar", Vacancies: 100, Value: "R$ 150,00"},
			{Title: "Operador de Caixa", Vacancies: 120, Value: "R$ 180,00"},
			{Title: "Garçon", Vacancies: 20, Value: "R$ 160,00"},
			{Title: "Chefe de Bar", Vacancies: 5, Value: "R$ 300,00"},
		},
		Description: "Faça parte da equipe do maior festival de música! Estamos buscando profissionais enérgicos para garantir uma experiência incrível.",
	}
}

// DescriptionGenerator writes a short promotional description for an event.
// Implementations absorb every failure and always return usable text.
type DescriptionGenerator interface {
	Generate(ctx context.Context, facts EventFacts) string
}

// FallbackDescription is used whenever the generator cannot produce text.
const FallbackDescription = "Junte-se a nós para este grande evento! Estamos contratando profissionais dedicados para garantir o sucesso da operação."

// BoardService orchestrates organizer and freelancer actions against the registry.
type BoardService interface {
	CreateEvent(ctx context.Context, draft EventDraft) (*Event, error)
	// DeleteEvent removes the event once confirmed. Registrations are kept.
	DeleteEvent(ctx context.Context, eventID string, confirmed bool) error
	ListEvents(ctx context.Context) []EventSummary
	GetEvent(ctx context.Context, eventID string) (*EventSummary, error)
	Register(ctx context.Context, eventID string, freelancer Freelancer) (*RegistrationReceipt, error)
	EventRoster(ctx context.Context, eventID string) (*EventRoster, error)
	// SearchRegistrants returns the matching rows and the total number of registrations stored.
	SearchRegistrants(ctx context.Context, term string) ([]RegistrantRow, int)
}
