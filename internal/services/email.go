package services

import (
	"context"
	"fmt"
	"log"

	"webinarhub/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendWebinarScheduled sends the organizer confirmation using the
// "webinar_scheduled" template and the given data.
func (s *emailService) SendWebinarScheduled(ctx context.Context, data *domain.WebinarScheduledEmailData) error {
	if data == nil {
		return fmt.Errorf("webinar scheduled email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("webinar_scheduled", data)
	if err != nil {
		return fmt.Errorf("failed to render webinar_scheduled template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send webinar scheduled email: %w", err)
	}
	log.Printf("[EMAIL] Webinar scheduled confirmation sent to %s", data.Email)
	return nil
}
