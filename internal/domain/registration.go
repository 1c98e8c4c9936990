package domain

import (
	"context"
	"time"
)

// Freelancer is the registration form input.
// SelectedRole is expected to match one of the event's role titles but is not checked;
// registrations with an unknown role are kept and excluded from role grouping.
// swagger:model Freelancer
type Freelancer struct {
	FullName     string `json:"fullName"`
	CPF          string `json:"cpf"`
	RG           string `json:"rg"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	SelectedRole string `json:"selectedRole"`
}

// Validate reports missing fields. Every field of the form is required.
func (f Freelancer) Validate() []string {
	var errs []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"fullName", f.FullName},
		{"cpf", f.CPF},
		{"rg", f.RG},
		{"phone", f.Phone},
		{"address", f.Address},
		{"selectedRole", f.SelectedRole},
	} {
		if isBlank(field.value) {
			errs = append(errs, field.name+" is required")
		}
	}
	return errs
}

// Registration is a freelancer's submitted interest in one role of one event.
// EventID is a non-owning reference: the event may have been deleted since.
// swagger:model Registration
type Registration struct {
	Freelancer
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRegistration returns a Registration for the freelancer. ID is set by the registry.
func NewRegistration(f Freelancer, eventID string, timestamp time.Time) Registration {
	return Registration{
		Freelancer: f,
		EventID:    eventID,
		Timestamp:  timestamp,
	}
}

// RegistrationReceipt is returned to the freelancer after a successful submission.
// swagger:model RegistrationReceipt
type RegistrationReceipt struct {
	Registration Registration `json:"registration"`
	Message      string       `json:"message"`
}

// RegistrantRow is one line of the talent database: a registration and the title of its event.
// swagger:model RegistrantRow
type RegistrantRow struct {
	Registration Registration `json:"registration"`
	EventTitle   string       `json:"event_title"`
}

// RegistrationNoticeData holds data for the organizer's new-registration email.
type RegistrationNoticeData struct {
	To           string
	EventTitle   string
	EventDate    string
	FullName     string
	Phone        string
	SelectedRole string
	RoleCount    int
	Vacancies    int
}

// RegistrationNotifier tells the organizer about a new registration.
type RegistrationNotifier interface {
	NotifyRegistration(ctx context.Context, event Event, reg Registration, roleCount int) error
}
