package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for webinar operations. The messages of the first four are
// user-facing: the HTTP layer returns them verbatim in error bodies.
var (
	ErrWebinarNotFound  = errors.New("Webinar not found")
	ErrNotOrganizer     = errors.New("User is not allowed to update this webinar")
	ErrSeatsDecreased   = errors.New("You cannot reduce the number of seats")
	ErrTooManySeats     = errors.New("Webinar must have at most 1000 seats")
	ErrWebinarExists    = errors.New("webinar id already exists")
)

// MaxSeats is the capacity cap for a single webinar.
const MaxSeats = 1000

// Webinar represents a scheduled webinar owned by its organizer.
// swagger:model Webinar
type Webinar struct {
	ID          string    `json:"id"`
	OrganizerID string    `json:"organizer_id"`
	Title       string    `json:"title"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Seats       int       `json:"seats"`
}

// NewWebinar returns a new Webinar. ID comes from the identifier generator;
// OrganizerID is the creating user and is never reassigned afterwards.
func NewWebinar(id, organizerID, title string, startDate, endDate time.Time, seats int) *Webinar {
	return &Webinar{
		ID:          id,
		OrganizerID: organizerID,
		Title:       title,
		StartDate:   startDate,
		EndDate:     endDate,
		Seats:       seats,
	}
}

// IsOrganizedBy reports whether the given user owns this webinar.
func (w *Webinar) IsOrganizedBy(userID string) bool {
	return w.OrganizerID == userID
}

// ChangeSeats raises the capacity to seats. The new value must be strictly
// greater than the current one; equal counts are rejected as a non-increase.
// The decrease check runs before the cap check, so a request that is both
// too low and above MaxSeats reports the decrease.
func (w *Webinar) ChangeSeats(seats int) error {
	if seats <= w.Seats {
		return ErrSeatsDecreased
	}
	if seats > MaxSeats {
		return ErrTooManySeats
	}
	w.Seats = seats
	return nil
}

// WebinarRepository defines the interface for webinar storage
type WebinarRepository interface {
	// Create inserts a new webinar. Returns ErrWebinarExists if the id is taken.
	Create(ctx context.Context, webinar *Webinar) error
	// GetByID returns the webinar with the given id, or ErrWebinarNotFound.
	GetByID(ctx context.Context, id string) (*Webinar, error)
	// Update replaces the stored state for the webinar's id with the full
	// entity state. Returns ErrWebinarNotFound if no such record exists.
	Update(ctx context.Context, webinar *Webinar) error
}

// OrganizeWebinarInput is the payload for creating a webinar.
type OrganizeWebinarInput struct {
	UserID    string
	Title     string
	Seats     int
	StartDate time.Time
	EndDate   time.Time
}

// OrganizeWebinarsUseCase creates webinars on behalf of an organizer and
// returns the assigned id.
type OrganizeWebinarsUseCase interface {
	Execute(ctx context.Context, input OrganizeWebinarInput) (string, error)
}

// ChangeSeatsInput is the payload for raising a webinar's capacity.
type ChangeSeatsInput struct {
	User      User
	WebinarID string
	Seats     int
}

// ChangeSeatsUseCase raises the capacity of an existing webinar. Only the
// organizer may do so, and only to a strictly larger value within MaxSeats.
type ChangeSeatsUseCase interface {
	Execute(ctx context.Context, input ChangeSeatsInput) error
}
