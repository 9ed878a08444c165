package usecase

import (
	"context"
	"fmt"
	"time"

	"webinarhub/internal/domain"
)

type organizeWebinars struct {
	webinarRepo    domain.WebinarRepository
	idGenerator    domain.IdentifierGenerator
	clock          domain.Clock
	contextTimeout time.Duration
}

// NewOrganizeWebinars creates the use case that registers new webinars.
func NewOrganizeWebinars(webinarRepo domain.WebinarRepository, idGenerator domain.IdentifierGenerator, clock domain.Clock, timeout time.Duration) domain.OrganizeWebinarsUseCase {
	return &organizeWebinars{
		webinarRepo:    webinarRepo,
		idGenerator:    idGenerator,
		clock:          clock,
		contextTimeout: timeout,
	}
}

// Execute assigns a fresh id, persists the webinar with the caller as
// organizer, and returns the id. Seat counts and the start/end window are
// accepted as-is: capacity is only bounded when it grows via ChangeSeats.
// TODO: confirm with product whether the creation path should also enforce
// the seat cap and a future start date.
func (uc *organizeWebinars) Execute(ctx context.Context, input domain.OrganizeWebinarInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	id := uc.idGenerator.Generate()
	webinar := domain.NewWebinar(id, input.UserID, input.Title, input.StartDate, input.EndDate, input.Seats)

	if err := uc.webinarRepo.Create(ctx, webinar); err != nil {
		return "", fmt.Errorf("create webinar: %w", err)
	}
	return id, nil
}
