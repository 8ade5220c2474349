//go:build unit

package booking_test

import (
	"testing"

	"hotelhub/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestAvailableNextStatuses(t *testing.T) {
	tests := []struct {
		name string
		from booking.Status
		want []booking.Status
	}{
		{
			name: "pending can be confirmed or cancelled",
			from: booking.StatusPending,
			want: []booking.Status{booking.StatusConfirmed, booking.StatusCancelled},
		},
		{
			name: "confirmed can check in or cancel",
			from: booking.StatusConfirmed,
			want: []booking.Status{booking.StatusCheckedIn, booking.StatusCancelled},
		},
		{
			name: "checked in can only check out",
			from: booking.StatusCheckedIn,
			want: []booking.Status{booking.StatusCheckedOut},
		},
		{
			name: "checked out can only complete",
			from: booking.StatusCheckedOut,
			want: []booking.Status{booking.StatusCompleted},
		},
		{
			name: "completed is terminal",
			from: booking.StatusCompleted,
			want: []booking.Status{},
		},
		{
			name: "cancelled is terminal",
			from: booking.StatusCancelled,
			want: []booking.Status{},
		},
		{
			name: "unknown status yields nothing",
			from: booking.Status("TELEPORTED"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.AvailableNextStatuses(tt.from)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AvailableNextStatuses(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestAvailableNextStatusesReturnsCopy(t *testing.T) {
	first := booking.AvailableNextStatuses(booking.StatusPending)
	first[0] = booking.Status("MANGLED")

	second := booking.AvailableNextStatuses(booking.StatusPending)
	assert.Equal(t, booking.StatusConfirmed, second[0])
}

func TestCanTransition(t *testing.T) {
	assert.True(t, booking.CanTransition(booking.StatusPending, booking.StatusConfirmed))
	assert.True(t, booking.CanTransition(booking.StatusConfirmed, booking.StatusCancelled))
	assert.True(t, booking.CanTransition(booking.StatusCheckedOut, booking.StatusCompleted))

	// No skipping states, no leaving terminals.
	assert.False(t, booking.CanTransition(booking.StatusPending, booking.StatusCheckedIn))
	assert.False(t, booking.CanTransition(booking.StatusCheckedIn, booking.StatusCancelled))
	assert.False(t, booking.CanTransition(booking.StatusCancelled, booking.StatusPending))
	assert.False(t, booking.CanTransition(booking.StatusCompleted, booking.StatusCheckedIn))
	assert.False(t, booking.CanTransition(booking.Status("TELEPORTED"), booking.StatusConfirmed))
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, booking.StatusCompleted.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.Status("TELEPORTED").IsTerminal())
}

func TestNewStatus(t *testing.T) {
	s, err := booking.NewStatus("CHECKED_IN")
	assert.NoError(t, err)
	assert.Equal(t, booking.StatusCheckedIn, s)

	_, err = booking.NewStatus("checked_in")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}
