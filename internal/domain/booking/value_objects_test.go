//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotelhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStayPeriod(t *testing.T) {
	checkIn := time.Date(2025, 12, 15, 14, 0, 0, 0, time.UTC)

	t.Run("check-out must follow check-in", func(t *testing.T) {
		_, err := booking.NewStayPeriod(checkIn, checkIn)
		assert.ErrorIs(t, err, booking.ErrInvalidStayPeriod)

		_, err = booking.NewStayPeriod(checkIn, checkIn.Add(-time.Hour))
		assert.ErrorIs(t, err, booking.ErrInvalidStayPeriod)
	})

	t.Run("nights round partial nights up", func(t *testing.T) {
		tests := []struct {
			name     string
			checkOut time.Time
			nights   int
		}{
			{"three full days", checkIn.AddDate(0, 0, 3), 3},
			{"three days minus two hours still bills three", checkIn.AddDate(0, 0, 3).Add(-2 * time.Hour), 3},
			{"a single hour bills one night", checkIn.Add(time.Hour), 1},
			{"exactly one day", checkIn.AddDate(0, 0, 1), 1},
			{"one day and one minute bills two", checkIn.AddDate(0, 0, 1).Add(time.Minute), 2},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p, err := booking.NewStayPeriod(checkIn, tt.checkOut)
				require.NoError(t, err)
				assert.Equal(t, tt.nights, p.Nights())
			})
		}
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		base, err := booking.NewStayPeriod(checkIn, checkIn.AddDate(0, 0, 3))
		require.NoError(t, err)

		touching, err := booking.NewStayPeriod(checkIn.AddDate(0, 0, 3), checkIn.AddDate(0, 0, 5))
		require.NoError(t, err)
		assert.False(t, base.Overlaps(touching))

		inside, err := booking.NewStayPeriod(checkIn.AddDate(0, 0, 1), checkIn.AddDate(0, 0, 2))
		require.NoError(t, err)
		assert.True(t, base.Overlaps(inside))
	})
}

func TestGuestCount(t *testing.T) {
	_, err := booking.NewGuestCount(0, 4)
	assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)

	_, err = booking.NewGuestCount(5, 4)
	assert.ErrorIs(t, err, booking.ErrGuestsExceedCapacity)

	g, err := booking.NewGuestCount(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Value())

	// Zero capacity disables the cap (used when reloading stored rows).
	g, err = booking.NewGuestCount(12, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Value())
}

func TestMoney(t *testing.T) {
	_, err := booking.NewMoney(-1)
	assert.ErrorIs(t, err, booking.ErrNegativePrice)

	m, err := booking.NewMoney(54000)
	require.NoError(t, err)
	assert.Equal(t, int64(54000), m.Cents())
	assert.InDelta(t, 540.0, m.Euros(), 0.001)
}
