package review

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id           uuid.UUID
	roomID       uuid.UUID
	userID       uuid.UUID
	bookingID    *uuid.UUID
	rating       Rating
	title        Title
	comment      Comment
	pros         []string
	cons         []string
	recommend    bool
	helpfulCount int
	response     *string
	respondedAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReview creates a review. A non-nil bookingID marks it verified; the
// caller is responsible for checking the referenced stay has ended.
func NewReview(
	roomID, userID uuid.UUID,
	bookingID *uuid.UUID,
	ratingValue int,
	titleText, commentText string,
	pros, cons []string,
	recommend bool,
) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	title, err := NewTitle(titleText)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		roomID:    roomID,
		userID:    userID,
		bookingID: bookingID,
		rating:    rating,
		title:     title,
		comment:   comment,
		pros:      trimAll(pros),
		cons:      trimAll(cons),
		recommend: recommend,
	}, nil
}

func ReconstructReview(
	id, roomID, userID uuid.UUID,
	bookingID *uuid.UUID,
	rating Rating,
	title Title,
	comment Comment,
	pros, cons []string,
	recommend bool,
	helpfulCount int,
	response *string,
	respondedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:           id,
		roomID:       roomID,
		userID:       userID,
		bookingID:    bookingID,
		rating:       rating,
		title:        title,
		comment:      comment,
		pros:         pros,
		cons:         cons,
		recommend:    recommend,
		helpfulCount: helpfulCount,
		response:     response,
		respondedAt:  respondedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Edit replaces the author-owned fields, keeping verification and the hotel
// response untouched.
func (r *Review) Edit(ratingValue int, titleText, commentText string, pros, cons []string, recommend bool) error {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return err
	}
	title, err := NewTitle(titleText)
	if err != nil {
		return err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return err
	}

	r.rating = rating
	r.title = title
	r.comment = comment
	r.pros = trimAll(pros)
	r.cons = trimAll(cons)
	r.recommend = recommend
	return nil
}

// Respond attaches the single hotel response an admin may leave.
func (r *Review) Respond(text string, now time.Time) error {
	if r.response != nil {
		return ErrAlreadyResponded
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyResponse
	}
	r.response = &trimmed
	r.respondedAt = &now
	return nil
}

func (r *Review) MarkHelpful() {
	r.helpfulCount++
}

// IsVerified reports whether the review is backed by a booking reference.
func (r *Review) IsVerified() bool {
	return r.bookingID != nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (r *Review) ID() uuid.UUID           { return r.id }
func (r *Review) RoomID() uuid.UUID       { return r.roomID }
func (r *Review) UserID() uuid.UUID       { return r.userID }
func (r *Review) BookingID() *uuid.UUID   { return r.bookingID }
func (r *Review) Rating() Rating          { return r.rating }
func (r *Review) Title() Title            { return r.title }
func (r *Review) Comment() Comment        { return r.comment }
func (r *Review) Pros() []string          { return r.pros }
func (r *Review) Cons() []string          { return r.cons }
func (r *Review) Recommend() bool         { return r.recommend }
func (r *Review) HelpfulCount() int       { return r.helpfulCount }
func (r *Review) Response() *string       { return r.response }
func (r *Review) RespondedAt() *time.Time { return r.respondedAt }
func (r *Review) CreatedAt() time.Time    { return r.createdAt }
func (r *Review) UpdatedAt() time.Time    { return r.updatedAt }
