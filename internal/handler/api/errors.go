package api

import (
	"errors"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/payment"
	"hotelhub/internal/domain/review"
	"hotelhub/internal/domain/room"
	"hotelhub/internal/domain/user"
	"hotelhub/internal/pkg/password"
)

// validationErrors are domain rejections that map to 400 rather than 500.
var validationErrors = []error{
	user.ErrInvalidEmail,
	user.ErrEmptyName,
	user.ErrInvalidRole,
	password.ErrInvalidPassword,
	room.ErrEmptyName,
	room.ErrInvalidRoomType,
	room.ErrInvalidPrice,
	room.ErrInvalidCapacity,
	room.ErrInvalidClimateOption,
	room.ErrUnknownRate,
	booking.ErrInvalidStayPeriod,
	booking.ErrInvalidGuestCount,
	booking.ErrGuestsExceedCapacity,
	booking.ErrNegativePrice,
	booking.ErrInvalidStatus,
	booking.ErrRoomInactive,
	payment.ErrInvalidAmount,
	payment.ErrMissingPhone,
	payment.ErrMissingProvider,
	payment.ErrEmptyCode,
	payment.ErrEmptyReason,
	review.ErrInvalidRating,
	review.ErrEmptyTitle,
	review.ErrTitleTooLong,
	review.ErrEmptyComment,
	review.ErrCommentTooLong,
	review.ErrEmptyResponse,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
