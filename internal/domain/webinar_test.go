package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebinar_ChangeSeats(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		requested int
		wantErr   error
		wantSeats int
	}{
		{
			name:      "increase",
			current:   100,
			requested: 200,
			wantErr:   nil,
			wantSeats: 200,
		},
		{
			name:      "increase to the cap",
			current:   100,
			requested: 1000,
			wantErr:   nil,
			wantSeats: 1000,
		},
		{
			name:      "decrease rejected",
			current:   100,
			requested: 50,
			wantErr:   ErrSeatsDecreased,
			wantSeats: 100,
		},
		{
			name:      "equal count rejected as non-increase",
			current:   100,
			requested: 100,
			wantErr:   ErrSeatsDecreased,
			wantSeats: 100,
		},
		{
			name:      "over the cap",
			current:   100,
			requested: 1001,
			wantErr:   ErrTooManySeats,
			wantSeats: 100,
		},
		{
			name:      "over the cap from the cap reports decrease first when lower",
			current:   1000,
			requested: 900,
			wantErr:   ErrSeatsDecreased,
			wantSeats: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWebinar("webinar-1", "alice", "Webinar title",
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC),
				tt.current)
			err := w.ChangeSeats(tt.requested)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantSeats, w.Seats)
		})
	}
}

func TestWebinar_IsOrganizedBy(t *testing.T) {
	w := NewWebinar("webinar-1", "alice", "T", time.Time{}, time.Time{}, 10)
	assert.True(t, w.IsOrganizedBy("alice"))
	assert.False(t, w.IsOrganizedBy("bob"))
}
