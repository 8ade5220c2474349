package request

import (
	"time"

	"hotelhub/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
	Guests   int       `json:"guests" binding:"required,gt=0"`
}

func (r CreateBookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		RoomID:   r.RoomID,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Guests:   r.Guests,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AvailabilityQuery struct {
	CheckIn  time.Time `form:"check_in" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	CheckOut time.Time `form:"check_out" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
