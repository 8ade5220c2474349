package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type RoomRM struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	Capacity         int32     `json:"capacity"`
	SizeSqm          *int32    `json:"size_sqm,omitempty"`
	Amenities        []string  `json:"amenities"`
	Climate          *string   `json:"climate,omitempty"`
	IsActive         bool      `json:"is_active"`
	Occupancy        string    `json:"occupancy"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RoomOccupancyRM carries the raw booking facts the occupancy classifier
// needs; the classification itself happens in the domain layer.
type RoomOccupancyRM struct {
	RoomID         uuid.UUID  `json:"room_id"`
	ActiveCheckOut *time.Time `json:"active_check_out,omitempty"`
	LastCheckOut   *time.Time `json:"last_check_out,omitempty"`
}
