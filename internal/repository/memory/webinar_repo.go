package memory

import (
	"context"
	"sync"

	"webinarhub/internal/domain"
)

type webinarRepository struct {
	mu       sync.RWMutex
	webinars map[string]domain.Webinar
}

// NewWebinarRepository returns an in-memory WebinarRepository, optionally
// seeded with existing webinars. Entities are stored by value so a caller
// mutating its own copy after a write never alters stored state.
func NewWebinarRepository(seed ...*domain.Webinar) domain.WebinarRepository {
	r := &webinarRepository{webinars: make(map[string]domain.Webinar, len(seed))}
	for _, w := range seed {
		r.webinars[w.ID] = *w
	}
	return r
}

func (r *webinarRepository) Create(ctx context.Context, webinar *domain.Webinar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.webinars[webinar.ID]; ok {
		return domain.ErrWebinarExists
	}
	r.webinars[webinar.ID] = *webinar
	return nil
}

func (r *webinarRepository) GetByID(ctx context.Context, id string) (*domain.Webinar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.webinars[id]
	if !ok {
		return nil, domain.ErrWebinarNotFound
	}
	// Return a copy so callers cannot mutate stored state in place.
	cp := w
	return &cp, nil
}

func (r *webinarRepository) Update(ctx context.Context, webinar *domain.Webinar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.webinars[webinar.ID]; !ok {
		return domain.ErrWebinarNotFound
	}
	r.webinars[webinar.ID] = *webinar
	return nil
}
