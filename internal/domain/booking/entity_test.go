//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom(t *testing.T, rate int64, capacity int) *room.Room {
	t.Helper()
	rm, err := room.NewRoom("Chambre 12", room.TypeDouble, rate, capacity, nil, []string{"wifi"}, nil)
	require.NoError(t, err)
	return rm
}

func TestNewNightlyBooking(t *testing.T) {
	checkIn := time.Date(2025, 12, 15, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 12, 18, 11, 0, 0, 0, time.UTC)

	t.Run("prices the stay from the nightly rate", func(t *testing.T) {
		rm := testRoom(t, 18000, 2)
		period, err := booking.NewStayPeriod(checkIn, checkOut)
		require.NoError(t, err)

		b, err := booking.NewNightlyBooking(rm, uuid.New(), period, 2)
		require.NoError(t, err)

		// Dec 15 14:00 to Dec 18 11:00 is under 72h but bills 3 nights.
		assert.Equal(t, int64(54000), b.Total().Cents())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
		assert.Equal(t, booking.KindNightly, b.Kind())

		require.NotNil(t, b.CancelDeadline())
		assert.Equal(t, checkIn.Add(-24*time.Hour), *b.CancelDeadline())
	})

	t.Run("rejects guests over capacity", func(t *testing.T) {
		rm := testRoom(t, 18000, 2)
		period, err := booking.NewStayPeriod(checkIn, checkOut)
		require.NoError(t, err)

		_, err = booking.NewNightlyBooking(rm, uuid.New(), period, 3)
		assert.ErrorIs(t, err, booking.ErrGuestsExceedCapacity)
	})

	t.Run("rejects inactive rooms", func(t *testing.T) {
		rm := room.ReconstructRoom(
			uuid.New(), "Chambre 13", room.TypeDouble, 18000, 2,
			nil, nil, nil, false, time.Now(), time.Now(),
		)
		period, err := booking.NewStayPeriod(checkIn, checkOut)
		require.NoError(t, err)

		_, err = booking.NewNightlyBooking(rm, uuid.New(), period, 1)
		assert.ErrorIs(t, err, booking.ErrRoomInactive)
	})
}

func TestNewHourlyBooking(t *testing.T) {
	checkIn := time.Date(2025, 12, 15, 15, 0, 0, 0, time.UTC)

	t.Run("prices from the hourly rate table and checks in immediately", func(t *testing.T) {
		rm := testRoom(t, 18000, 2)

		b, err := booking.NewHourlyBooking(rm, uuid.New(), checkIn, 3, room.ClimateAirConditioned, 2)
		require.NoError(t, err)

		// DOUBLE + CLIMATISE is 25EUR/h, so 3 hours cost 7500 cents.
		assert.Equal(t, int64(7500), b.Total().Cents())
		assert.Equal(t, booking.StatusCheckedIn, b.Status())
		assert.Equal(t, booking.PaymentConfirmed, b.PaymentStatus())
		assert.Equal(t, booking.KindHourly, b.Kind())
		assert.Equal(t, checkIn.Add(3*time.Hour), b.Period().CheckOut())
		assert.Nil(t, b.CancelDeadline())
	})

	t.Run("rejects zero hours", func(t *testing.T) {
		rm := testRoom(t, 18000, 2)

		_, err := booking.NewHourlyBooking(rm, uuid.New(), checkIn, 0, room.ClimateVentilated, 1)
		assert.Error(t, err)
	})
}

func TestBookingTransitions(t *testing.T) {
	checkIn := time.Date(2025, 12, 15, 14, 0, 0, 0, time.UTC)
	rm := testRoom(t, 18000, 2)
	period, err := booking.NewStayPeriod(checkIn, checkIn.AddDate(0, 0, 2))
	require.NoError(t, err)

	newPending := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := booking.NewNightlyBooking(rm, uuid.New(), period, 2)
		require.NoError(t, err)
		return b
	}

	t.Run("walks the full lifecycle", func(t *testing.T) {
		b := newPending(t)
		for _, next := range []booking.Status{
			booking.StatusConfirmed,
			booking.StatusCheckedIn,
			booking.StatusCheckedOut,
			booking.StatusCompleted,
		} {
			require.NoError(t, b.TransitionTo(next))
			assert.Equal(t, next, b.Status())
		}
	})

	t.Run("rejects skipping states", func(t *testing.T) {
		b := newPending(t)
		assert.ErrorIs(t, b.TransitionTo(booking.StatusCheckedOut), booking.ErrInvalidTransition)
	})

	t.Run("rejects leaving a terminal state", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.TransitionTo(booking.StatusCancelled))
		assert.ErrorIs(t, b.TransitionTo(booking.StatusConfirmed), booking.ErrInvalidTransition)
	})
}

func TestBookingCancel(t *testing.T) {
	checkIn := time.Date(2025, 12, 15, 14, 0, 0, 0, time.UTC)
	rm := testRoom(t, 18000, 2)
	period, err := booking.NewStayPeriod(checkIn, checkIn.AddDate(0, 0, 2))
	require.NoError(t, err)

	t.Run("allowed before the deadline", func(t *testing.T) {
		b, err := booking.NewNightlyBooking(rm, uuid.New(), period, 2)
		require.NoError(t, err)

		require.NoError(t, b.Cancel(checkIn.Add(-48*time.Hour)))
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("rejected after the deadline", func(t *testing.T) {
		b, err := booking.NewNightlyBooking(rm, uuid.New(), period, 2)
		require.NoError(t, err)

		err = b.Cancel(checkIn.Add(-2 * time.Hour))
		assert.ErrorIs(t, err, booking.ErrCancelDeadlinePassed)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("rejected once checked in", func(t *testing.T) {
		b, err := booking.NewNightlyBooking(rm, uuid.New(), period, 2)
		require.NoError(t, err)
		require.NoError(t, b.TransitionTo(booking.StatusConfirmed))
		require.NoError(t, b.TransitionTo(booking.StatusCheckedIn))

		assert.ErrorIs(t, b.Cancel(checkIn.Add(-48*time.Hour)), booking.ErrNotCancellable)
	})
}

func TestApplyPaymentOutcome(t *testing.T) {
	checkIn := time.Date(2025, 12, 15, 14, 0, 0, 0, time.UTC)
	rm := testRoom(t, 18000, 2)
	period, err := booking.NewStayPeriod(checkIn, checkIn.AddDate(0, 0, 2))
	require.NoError(t, err)

	t.Run("confirmation advances a pending booking", func(t *testing.T) {
		b, err := booking.NewNightlyBooking(rm, uuid.New(), period, 2)
		require.NoError(t, err)

		b.ApplyPaymentOutcome(booking.PaymentConfirmed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, booking.PaymentConfirmed, b.PaymentStatus())
	})

	t.Run("rejection records the outcome without moving the booking", func(t *testing.T) {
		b, err := booking.NewNightlyBooking(rm, uuid.New(), period, 2)
		require.NoError(t, err)

		b.ApplyPaymentOutcome(booking.PaymentRejected)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.PaymentRejected, b.PaymentStatus())
	})
}
