//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"hotelhub/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReview(t *testing.T, bookingID *uuid.UUID) *review.Review {
	t.Helper()
	r, err := review.NewReview(
		uuid.New(), uuid.New(), bookingID,
		4, "Great stay", "Quiet room, friendly staff.",
		[]string{"clean", " quiet "}, []string{"slow wifi"},
		true,
	)
	require.NoError(t, err)
	return r
}

func TestNewReview(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		bookingID := uuid.New()
		r := newTestReview(t, &bookingID)

		assert.Equal(t, 4, r.Rating().Value())
		assert.Equal(t, "Great stay", r.Title().String())
		assert.True(t, r.Recommend())
		assert.Equal(t, []string{"clean", "quiet"}, r.Pros())
		assert.True(t, r.IsVerified())
	})

	t.Run("walk-in review is unverified", func(t *testing.T) {
		r := newTestReview(t, nil)
		assert.False(t, r.IsVerified())
	})

	t.Run("validation", func(t *testing.T) {
		roomID, userID := uuid.New(), uuid.New()

		_, err := review.NewReview(roomID, userID, nil, 0, "Title", "Comment", nil, nil, true)
		assert.ErrorIs(t, err, review.ErrInvalidRating)

		_, err = review.NewReview(roomID, userID, nil, 6, "Title", "Comment", nil, nil, true)
		assert.ErrorIs(t, err, review.ErrInvalidRating)

		_, err = review.NewReview(roomID, userID, nil, 3, "  ", "Comment", nil, nil, true)
		assert.ErrorIs(t, err, review.ErrEmptyTitle)

		_, err = review.NewReview(roomID, userID, nil, 3, "Title", "", nil, nil, true)
		assert.ErrorIs(t, err, review.ErrEmptyComment)

		_, err = review.NewReview(roomID, userID, nil, 3, strings.Repeat("x", review.MaxTitleLength+1), "Comment", nil, nil, true)
		assert.ErrorIs(t, err, review.ErrTitleTooLong)

		_, err = review.NewReview(roomID, userID, nil, 3, "Title", strings.Repeat("x", review.MaxCommentLength+1), nil, nil, true)
		assert.ErrorIs(t, err, review.ErrCommentTooLong)
	})
}

func TestReviewEdit(t *testing.T) {
	t.Run("replaces author fields", func(t *testing.T) {
		bookingID := uuid.New()
		r := newTestReview(t, &bookingID)

		require.NoError(t, r.Edit(2, "Disappointing", "Noisy after renovation.", nil, []string{"noise"}, false))
		assert.Equal(t, 2, r.Rating().Value())
		assert.Equal(t, "Disappointing", r.Title().String())
		assert.False(t, r.Recommend())
		assert.True(t, r.IsVerified(), "editing must not drop verification")
	})

	t.Run("invalid edit leaves the review untouched", func(t *testing.T) {
		r := newTestReview(t, nil)

		assert.ErrorIs(t, r.Edit(9, "Title", "Comment", nil, nil, true), review.ErrInvalidRating)
		assert.Equal(t, 4, r.Rating().Value())
	})
}

func TestReviewRespond(t *testing.T) {
	now := time.Date(2025, 12, 20, 9, 0, 0, 0, time.UTC)

	t.Run("attaches a single response", func(t *testing.T) {
		r := newTestReview(t, nil)

		require.NoError(t, r.Respond("Thank you, the wifi was upgraded.", now))
		require.NotNil(t, r.Response())
		assert.Equal(t, "Thank you, the wifi was upgraded.", *r.Response())
		assert.Equal(t, now, *r.RespondedAt())
	})

	t.Run("second response is rejected", func(t *testing.T) {
		r := newTestReview(t, nil)
		require.NoError(t, r.Respond("First.", now))

		assert.ErrorIs(t, r.Respond("Second.", now.Add(time.Hour)), review.ErrAlreadyResponded)
		assert.Equal(t, "First.", *r.Response())
	})

	t.Run("blank response is rejected", func(t *testing.T) {
		r := newTestReview(t, nil)
		assert.ErrorIs(t, r.Respond("   ", now), review.ErrEmptyResponse)
	})
}

func TestMarkHelpful(t *testing.T) {
	r := newTestReview(t, nil)
	assert.Equal(t, 0, r.HelpfulCount())

	r.MarkHelpful()
	r.MarkHelpful()
	assert.Equal(t, 2, r.HelpfulCount())
}
