package request

import (
	"hotelhub/internal/usecase"

	"github.com/google/uuid"
)

type HourlyBookingRequest struct {
	RoomID  uuid.UUID `json:"room_id" binding:"required"`
	GuestID uuid.UUID `json:"guest_id" binding:"required"`
	Hours   int       `json:"hours" binding:"required,gt=0"`
	Climate string    `json:"climate" binding:"required"`
	Guests  int       `json:"guests" binding:"required,gt=0"`
}

func (r HourlyBookingRequest) ToInput() usecase.CreateHourlyBookingInput {
	return usecase.CreateHourlyBookingInput{
		RoomID:  r.RoomID,
		GuestID: r.GuestID,
		Hours:   r.Hours,
		Climate: r.Climate,
		Guests:  r.Guests,
	}
}
