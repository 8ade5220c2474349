package response

import (
	"time"

	"hotelhub/internal/domain/review"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID           uuid.UUID  `json:"id"`
	RoomID       uuid.UUID  `json:"room_id"`
	UserID       uuid.UUID  `json:"user_id"`
	BookingID    *uuid.UUID `json:"booking_id,omitempty"`
	Verified     bool       `json:"verified"`
	Rating       int        `json:"rating"`
	Title        string     `json:"title"`
	Comment      string     `json:"comment"`
	Pros         []string   `json:"pros"`
	Cons         []string   `json:"cons"`
	Recommend    bool       `json:"recommend"`
	HelpfulCount int        `json:"helpful_count"`
	Response     *string    `json:"response,omitempty"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
}

func FromReview(rv *review.Review) *ReviewResponse {
	var resp ReviewResponse
	// copier fills the fields whose names match entity getters.
	_ = copier.Copy(&resp, rv)
	resp.ID = rv.ID()
	resp.Rating = rv.Rating().Value()
	resp.Title = rv.Title().String()
	resp.Comment = rv.Comment().String()
	resp.Verified = rv.IsVerified()
	return &resp
}
