package clock

import (
	"time"

	"webinarhub/internal/domain"
)

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() domain.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always reports the same instant (for tests).
func NewFixed(t time.Time) domain.Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
