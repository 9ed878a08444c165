package postgres

import (
	"context"
	"database/sql"
	"errors"

	"webinarhub/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type webinarRepository struct {
	DB *sql.DB
}

func NewWebinarRepository(db *sql.DB) domain.WebinarRepository {
	return &webinarRepository{
		DB: db,
	}
}

func (r *webinarRepository) Create(ctx context.Context, w *domain.Webinar) error {
	query := `
		INSERT INTO webinars (id, organizer_id, title, start_date, end_date, seats)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, w.ID, w.OrganizerID, w.Title, w.StartDate, w.EndDate, w.Seats)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrWebinarExists
		}
		return err
	}
	return nil
}

func (r *webinarRepository) GetByID(ctx context.Context, id string) (*domain.Webinar, error) {
	query := `
		SELECT id, organizer_id, title, start_date, end_date, seats
		FROM webinars
		WHERE id = $1
	`
	w := &domain.Webinar{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.OrganizerID, &w.Title, &w.StartDate, &w.EndDate, &w.Seats,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWebinarNotFound
		}
		return nil, err
	}
	return w, nil
}

// Update replaces the mutable state for the webinar's id. organizer_id is
// never reassigned.
func (r *webinarRepository) Update(ctx context.Context, w *domain.Webinar) error {
	query := `
		UPDATE webinars
		SET title = $2, start_date = $3, end_date = $4, seats = $5
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, w.ID, w.Title, w.StartDate, w.EndDate, w.Seats)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrWebinarNotFound
	}
	return nil
}
