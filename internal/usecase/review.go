package usecase

import (
	"context"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/review"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound   = errs.New("review not found")
	ErrNotReviewAuthor  = errs.New("review belongs to another user")
	ErrStayNotComplete  = errs.New("booking stay has not been completed")
	ErrBookingRoomMixup = errs.New("booking does not reference the reviewed room")
)

type ReviewInput struct {
	Rating    int
	Title     string
	Comment   string
	Pros      []string
	Cons      []string
	Recommend bool
}

type ReviewUseCase interface {
	Create(ctx context.Context, userID, roomID uuid.UUID, bookingID *uuid.UUID, input ReviewInput) (*review.Review, error)
	Update(ctx context.Context, userID, reviewID uuid.UUID, input ReviewInput) (*review.Review, error)
	Delete(ctx context.Context, userID, reviewID uuid.UUID, isAdmin bool) error
	Respond(ctx context.Context, reviewID uuid.UUID, text string) (*review.Review, error)
	MarkHelpful(ctx context.Context, reviewID uuid.UUID) (*review.Review, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*readmodel.ReviewRM, error)
}

type reviewUseCase struct {
	reviewRepo  ReviewRepository
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	clk         clock.Clock
}

func NewReviewUseCase(reviewRepo ReviewRepository, roomRepo RoomRepository, bookingRepo BookingRepository, clk clock.Clock) ReviewUseCase {
	return &reviewUseCase{reviewRepo: reviewRepo, roomRepo: roomRepo, bookingRepo: bookingRepo, clk: clk}
}

// Create posts a review. Passing a booking reference makes it a verified
// review, which requires the booking to be the caller's own finished stay in
// that room.
func (u *reviewUseCase) Create(ctx context.Context, userID, roomID uuid.UUID, bookingID *uuid.UUID, input ReviewInput) (*review.Review, error) {
	if _, err := u.roomRepo.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	if bookingID != nil {
		if err := u.checkVerifiedStay(ctx, userID, roomID, *bookingID); err != nil {
			return nil, err
		}
	}

	rv, err := review.NewReview(roomID, userID, bookingID, input.Rating, input.Title, input.Comment, input.Pros, input.Cons, input.Recommend)
	if err != nil {
		return nil, err
	}

	if err := u.reviewRepo.Create(ctx, rv); err != nil {
		return nil, errs.Wrap(err, "failed to create review")
	}
	return rv, nil
}

func (u *reviewUseCase) Update(ctx context.Context, userID, reviewID uuid.UUID, input ReviewInput) (*review.Review, error) {
	rv, err := u.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv.UserID() != userID {
		return nil, ErrNotReviewAuthor
	}

	if err := rv.Edit(input.Rating, input.Title, input.Comment, input.Pros, input.Cons, input.Recommend); err != nil {
		return nil, err
	}

	if err := u.reviewRepo.Update(ctx, rv); err != nil {
		return nil, errs.Wrap(err, "failed to update review")
	}
	return rv, nil
}

func (u *reviewUseCase) Delete(ctx context.Context, userID, reviewID uuid.UUID, isAdmin bool) error {
	rv, err := u.findReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if !isAdmin && rv.UserID() != userID {
		return ErrNotReviewAuthor
	}

	if err := u.reviewRepo.Delete(ctx, reviewID); err != nil {
		return errs.Wrap(err, "failed to delete review")
	}
	return nil
}

func (u *reviewUseCase) Respond(ctx context.Context, reviewID uuid.UUID, text string) (*review.Review, error) {
	rv, err := u.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if err := rv.Respond(text, u.clk.Now()); err != nil {
		return nil, err
	}

	if err := u.reviewRepo.Update(ctx, rv); err != nil {
		return nil, errs.Wrap(err, "failed to save review response")
	}
	return rv, nil
}

func (u *reviewUseCase) MarkHelpful(ctx context.Context, reviewID uuid.UUID) (*review.Review, error) {
	rv, err := u.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	rv.MarkHelpful()
	if err := u.reviewRepo.Update(ctx, rv); err != nil {
		return nil, errs.Wrap(err, "failed to save helpful count")
	}
	return rv, nil
}

func (u *reviewUseCase) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*readmodel.ReviewRM, error) {
	list, err := u.reviewRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reviews")
	}
	return list, nil
}

func (u *reviewUseCase) findReview(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	rv, err := u.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReviewNotFound)
		}
		return nil, errs.Wrap(err, "failed to find review")
	}
	return rv, nil
}

func (u *reviewUseCase) checkVerifiedStay(ctx context.Context, userID, roomID, bookingID uuid.UUID) error {
	b, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return errs.Wrap(err, "failed to find booking")
	}

	if b.UserID() != userID {
		return ErrNotBookingOwner
	}
	if b.RoomID() != roomID {
		return ErrBookingRoomMixup
	}
	if b.Status() != booking.StatusCheckedOut && b.Status() != booking.StatusCompleted {
		return ErrStayNotComplete
	}
	return nil
}
