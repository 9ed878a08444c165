package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WebinarScheduledEmailData holds data for the organizer confirmation email.
type WebinarScheduledEmailData struct {
	Email         string
	OrganizerName string
	Title         string
	StartDate     time.Time
	EndDate       time.Time
	Seats         int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWebinarScheduled(ctx context.Context, data *WebinarScheduledEmailData) error
}
