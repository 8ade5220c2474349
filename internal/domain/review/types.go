package review

import "errors"

var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrTitleTooLong     = errors.New("title exceeds maximum length")
	ErrEmptyComment     = errors.New("comment cannot be empty")
	ErrCommentTooLong   = errors.New("comment exceeds maximum length")
	ErrEmptyResponse    = errors.New("response cannot be empty")
	ErrAlreadyResponded = errors.New("review already has a hotel response")
)
