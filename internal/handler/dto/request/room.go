package request

import "hotelhub/internal/usecase"

type RoomRequest struct {
	Name             string   `json:"name" binding:"required"`
	Type             string   `json:"type" binding:"required"`
	NightlyRateCents int64    `json:"nightly_rate_cents" binding:"required,gt=0"`
	Capacity         int      `json:"capacity" binding:"required,gt=0"`
	SizeSqm          *int     `json:"size_sqm,omitempty"`
	Amenities        []string `json:"amenities"`
	Climate          *string  `json:"climate,omitempty"`
}

func (r RoomRequest) ToInput() usecase.CreateRoomInput {
	return usecase.CreateRoomInput{
		Name:             r.Name,
		Type:             r.Type,
		NightlyRateCents: r.NightlyRateCents,
		Capacity:         r.Capacity,
		SizeSqm:          r.SizeSqm,
		Amenities:        r.Amenities,
		Climate:          r.Climate,
	}
}
