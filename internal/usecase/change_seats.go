package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webinarhub/internal/domain"
)

type changeSeats struct {
	webinarRepo    domain.WebinarRepository
	contextTimeout time.Duration
}

// NewChangeSeats creates the use case that raises a webinar's capacity.
func NewChangeSeats(webinarRepo domain.WebinarRepository, timeout time.Duration) domain.ChangeSeatsUseCase {
	return &changeSeats{
		webinarRepo:    webinarRepo,
		contextTimeout: timeout,
	}
}

// Execute loads the webinar, authorizes the caller, validates the new seat
// count, and persists the change. The authorization check runs before any
// seat validation so a non-organizer never learns whether the requested
// count would have been accepted. Nothing is written on any failure path.
func (uc *changeSeats) Execute(ctx context.Context, input domain.ChangeSeatsInput) error {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	webinar, err := uc.webinarRepo.GetByID(ctx, input.WebinarID)
	if err != nil {
		if errors.Is(err, domain.ErrWebinarNotFound) {
			return domain.ErrWebinarNotFound
		}
		return fmt.Errorf("get webinar: %w", err)
	}

	if !webinar.IsOrganizedBy(input.User.ID) {
		return domain.ErrNotOrganizer
	}

	if err := webinar.ChangeSeats(input.Seats); err != nil {
		return err
	}

	if err := uc.webinarRepo.Update(ctx, webinar); err != nil {
		if errors.Is(err, domain.ErrWebinarNotFound) {
			return domain.ErrWebinarNotFound
		}
		return fmt.Errorf("update webinar: %w", err)
	}
	return nil
}
