package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"webinarhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer records the last send.
type fakeMailer struct {
	err         error
	lastTo      string
	lastSubject string
	lastText    string
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	f.lastTo = to
	f.lastSubject = subject
	f.lastText = text
	return f.err
}

// fakeRenderer returns canned content.
type fakeRenderer struct {
	err      error
	lastName string
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.lastName = templateName
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendWebinarScheduled(t *testing.T) {
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}
	svc := NewEmailService(mailer, renderer)

	err := svc.SendWebinarScheduled(context.Background(), &domain.WebinarScheduledEmailData{
		Email:         "alice@example.com",
		OrganizerName: "Alice",
		Title:         "Webinar title",
		StartDate:     time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC),
		Seats:         100,
	})
	require.NoError(t, err)
	assert.Equal(t, "webinar_scheduled", renderer.lastName)
	assert.Equal(t, "alice@example.com", mailer.lastTo)
	assert.Equal(t, "subject", mailer.lastSubject)
}

func TestEmailService_SendWebinarScheduled_nil_data(t *testing.T) {
	svc := NewEmailService(&fakeMailer{}, &fakeRenderer{})
	assert.Error(t, svc.SendWebinarScheduled(context.Background(), nil))
}

func TestEmailService_SendWebinarScheduled_errors_propagate(t *testing.T) {
	renderErr := errors.New("missing template")
	svc := NewEmailService(&fakeMailer{}, &fakeRenderer{err: renderErr})
	err := svc.SendWebinarScheduled(context.Background(), &domain.WebinarScheduledEmailData{Email: "a@b.co"})
	require.ErrorIs(t, err, renderErr)

	sendErr := errors.New("ses throttled")
	svc = NewEmailService(&fakeMailer{err: sendErr}, &fakeRenderer{})
	err = svc.SendWebinarScheduled(context.Background(), &domain.WebinarScheduledEmailData{Email: "a@b.co"})
	require.ErrorIs(t, err, sendErr)
}
