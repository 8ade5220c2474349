//go:build unit

package room_test

import (
	"testing"
	"time"

	"hotelhub/internal/domain/room"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOccupancy(t *testing.T) {
	now := time.Date(2025, 12, 15, 12, 0, 0, 0, time.UTC)
	at := func(offsetMinutes int) *time.Time {
		ts := now.Add(time.Duration(offsetMinutes) * time.Minute)
		return &ts
	}

	tests := []struct {
		name string
		in   room.OccupancyInput
		want room.Occupancy
	}{
		{
			name: "no booking history",
			in:   room.OccupancyInput{},
			want: room.OccupancyAvailable,
		},
		{
			name: "active booking with hours left",
			in:   room.OccupancyInput{ActiveCheckOut: at(120)},
			want: room.OccupancyNormal,
		},
		{
			name: "active booking just over the ending-soon threshold",
			in:   room.OccupancyInput{ActiveCheckOut: at(31)},
			want: room.OccupancyNormal,
		},
		{
			name: "active booking inside the ending-soon window",
			in:   room.OccupancyInput{ActiveCheckOut: at(30)},
			want: room.OccupancyEndingSoon,
		},
		{
			name: "active booking ending in five minutes",
			in:   room.OccupancyInput{ActiveCheckOut: at(5)},
			want: room.OccupancyEndingSoon,
		},
		{
			name: "guest overstayed checkout",
			in:   room.OccupancyInput{ActiveCheckOut: at(-1)},
			want: room.OccupancyOverdue,
		},
		{
			name: "checkout five minutes ago keeps the room in cleaning",
			in:   room.OccupancyInput{LastCheckOut: at(-5)},
			want: room.OccupancyCleaningBuffer,
		},
		{
			name: "checkout exactly at the buffer boundary releases the room",
			in:   room.OccupancyInput{LastCheckOut: at(-room.CleaningBufferMinutes)},
			want: room.OccupancyAvailable,
		},
		{
			name: "old checkout leaves the room available",
			in:   room.OccupancyInput{LastCheckOut: at(-240)},
			want: room.OccupancyAvailable,
		},
		{
			name: "active booking wins over recent checkout",
			in:   room.OccupancyInput{ActiveCheckOut: at(90), LastCheckOut: at(-3)},
			want: room.OccupancyNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, room.ClassifyOccupancy(tt.in, now))
		})
	}
}
