package services

import (
	"context"
	"fmt"
	"log/slog"

	"freelancercheckin/internal/domain"
)

const registrationNoticeTemplate = "registration_notice"

type registrationNotifier struct {
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
	organizerEmail string
	logger         *slog.Logger
}

// NewRegistrationNotifier returns a notifier that emails organizerEmail about each new registration.
// With an empty address it does nothing.
func NewRegistrationNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, organizerEmail string, logger *slog.Logger) domain.RegistrationNotifier {
	return &registrationNotifier{
		mailer:         mailer,
		renderer:       renderer,
		organizerEmail: organizerEmail,
		logger:         logger,
	}
}

// NotifyRegistration sends the "registration_notice" email for reg.
func (n *registrationNotifier) NotifyRegistration(ctx context.Context, event domain.Event, reg domain.Registration, roleCount int) error {
	if n.organizerEmail == "" {
		return nil
	}
	data := &domain.RegistrationNoticeData{
		To:           n.organizerEmail,
		EventTitle:   event.Title,
		EventDate:    event.FormattedDate(),
		FullName:     reg.FullName,
		Phone:        reg.Phone,
		SelectedRole: reg.SelectedRole,
		RoleCount:    roleCount,
	}
	for _, role := range event.Roles {
		if role.Title == reg.SelectedRole {
			data.Vacancies = role.Vacancies
			break
		}
	}
	subject, htmlBody, textBody, err := n.renderer.Render(registrationNoticeTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render registration notice: %w", err)
	}
	if err := n.mailer.Send(ctx, data.To, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send registration notice: %w", err)
	}
	n.logger.DebugContext(ctx, "registration notice sent", "to", data.To, "registration_id", reg.ID)
	return nil
}
