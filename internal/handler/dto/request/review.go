package request

import (
	"hotelhub/internal/usecase"

	"github.com/google/uuid"
)

type ReviewRequest struct {
	Rating    int        `json:"rating" binding:"required,min=1,max=5"`
	Title     string     `json:"title" binding:"required"`
	Comment   string     `json:"comment" binding:"required"`
	Pros      []string   `json:"pros"`
	Cons      []string   `json:"cons"`
	Recommend bool       `json:"recommend"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
}

func (r ReviewRequest) ToInput() usecase.ReviewInput {
	return usecase.ReviewInput{
		Rating:    r.Rating,
		Title:     r.Title,
		Comment:   r.Comment,
		Pros:      r.Pros,
		Cons:      r.Cons,
		Recommend: r.Recommend,
	}
}

type RespondReviewRequest struct {
	Response string `json:"response" binding:"required"`
}
