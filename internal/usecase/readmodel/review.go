package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ReviewRM struct {
	ID           uuid.UUID  `json:"id"`
	RoomID       uuid.UUID  `json:"room_id"`
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	BookingID    *uuid.UUID `json:"booking_id,omitempty"`
	Verified     bool       `json:"verified"`
	Rating       int32      `json:"rating"`
	Title        string     `json:"title"`
	Comment      string     `json:"comment"`
	Pros         []string   `json:"pros"`
	Cons         []string   `json:"cons"`
	Recommend    bool       `json:"recommend"`
	HelpfulCount int32      `json:"helpful_count"`
	Response     *string    `json:"response,omitempty"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
