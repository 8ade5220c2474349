package room

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Room struct {
	id               uuid.UUID
	name             string
	roomType         RoomType
	nightlyRateCents int64
	capacity         int
	sizeSqm          *int
	amenities        []string
	climate          *ClimateOption
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoom(
	name string,
	roomType RoomType,
	nightlyRateCents int64,
	capacity int,
	sizeSqm *int,
	amenities []string,
	climate *ClimateOption,
) (*Room, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if nightlyRateCents <= 0 {
		return nil, ErrInvalidPrice
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if climate != nil && !climate.IsValid() {
		return nil, ErrInvalidClimateOption
	}

	return &Room{
		id:               uuid.New(),
		name:             trimmed,
		roomType:         roomType,
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
		sizeSqm:          sizeSqm,
		amenities:        amenities,
		climate:          climate,
		isActive:         true,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	name string,
	roomType RoomType,
	nightlyRateCents int64,
	capacity int,
	sizeSqm *int,
	amenities []string,
	climate *ClimateOption,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:               id,
		name:             name,
		roomType:         roomType,
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
		sizeSqm:          sizeSqm,
		amenities:        amenities,
		climate:          climate,
		isActive:         isActive,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (r *Room) ID() uuid.UUID           { return r.id }
func (r *Room) Name() string            { return r.name }
func (r *Room) Type() RoomType          { return r.roomType }
func (r *Room) NightlyRateCents() int64 { return r.nightlyRateCents }
func (r *Room) Capacity() int           { return r.capacity }
func (r *Room) SizeSqm() *int           { return r.sizeSqm }
func (r *Room) Amenities() []string     { return r.amenities }
func (r *Room) Climate() *ClimateOption { return r.climate }
func (r *Room) IsActive() bool          { return r.isActive }
func (r *Room) CreatedAt() time.Time    { return r.createdAt }
func (r *Room) UpdatedAt() time.Time    { return r.updatedAt }
