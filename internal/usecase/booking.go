package usecase

import (
	"context"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrRoomUnavailable = errs.New("room is not available for the requested period")
	ErrNotBookingOwner = errs.New("booking belongs to another user")
)

type CreateBookingInput struct {
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

type AvailabilityResult struct {
	Available bool  `json:"available"`
	Nights    int   `json:"nights"`
	PriceEst  int64 `json:"price_estimate_cents"`
}

type BookingUseCase interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateBookingInput) (*readmodel.BookingRM, error)
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityResult, error)
	Cancel(ctx context.Context, userID, bookingID uuid.UUID) error
	ListMine(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error)
	GetMine(ctx context.Context, userID, bookingID uuid.UUID) (*readmodel.BookingRM, error)
	ListAll(ctx context.Context) ([]*readmodel.BookingRM, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) (*readmodel.BookingRM, error)
}

type bookingUseCase struct {
	pool        *pgxpool.Pool
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	clk         clock.Clock
}

func NewBookingUseCase(pool *pgxpool.Pool, bookingRepo BookingRepository, roomRepo RoomRepository, clk clock.Clock) BookingUseCase {
	return &bookingUseCase{pool: pool, bookingRepo: bookingRepo, roomRepo: roomRepo, clk: clk}
}

// Create books a nightly stay. Overlap is enforced by the database exclusion
// constraint, so two clients racing for the same dates cannot both win; the
// loser gets ErrRoomUnavailable.
func (u *bookingUseCase) Create(ctx context.Context, userID uuid.UUID, input CreateBookingInput) (*readmodel.BookingRM, error) {
	rm, err := u.roomRepo.FindByID(ctx, input.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	period, err := booking.NewStayPeriod(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	newBooking, err := booking.NewNightlyBooking(rm, userID, period, input.Guests)
	if err != nil {
		return nil, err
	}

	if err := u.bookingRepo.Create(ctx, u.pool, newBooking); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrRoomUnavailable)
		}
		return nil, errs.Wrap(err, "failed to create booking")
	}

	return u.bookingRepo.FindViewByID(ctx, newBooking.ID())
}

// CheckAvailability is advisory only; Create re-checks atomically.
func (u *bookingUseCase) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	rm, err := u.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	period, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	overlaps, err := u.bookingRepo.HasOverlap(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check availability")
	}

	return &AvailabilityResult{
		Available: rm.IsActive() && !overlaps,
		Nights:    period.Nights(),
		PriceEst:  rm.NightlyRateCents() * int64(period.Nights()),
	}, nil
}

func (u *bookingUseCase) Cancel(ctx context.Context, userID, bookingID uuid.UUID) error {
	found, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return errs.Wrap(err, "failed to find booking")
	}
	if found.UserID() != userID {
		return ErrNotBookingOwner
	}

	if err := found.Cancel(u.clk.Now()); err != nil {
		return err
	}

	if err := u.bookingRepo.UpdateStatus(ctx, u.pool, bookingID, found.Status()); err != nil {
		return errs.Wrap(err, "failed to cancel booking")
	}
	return nil
}

func (u *bookingUseCase) ListMine(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error) {
	list, err := u.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return list, nil
}

func (u *bookingUseCase) GetMine(ctx context.Context, userID, bookingID uuid.UUID) (*readmodel.BookingRM, error) {
	view, err := u.bookingRepo.FindViewByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	if view.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	return view, nil
}

func (u *bookingUseCase) ListAll(ctx context.Context) ([]*readmodel.BookingRM, error) {
	list, err := u.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return list, nil
}

// UpdateStatus is the staff lifecycle control (confirm, check-in, check-out,
// complete). Illegal jumps are rejected by the transition table before
// anything is written.
func (u *bookingUseCase) UpdateStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) (*readmodel.BookingRM, error) {
	found, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if err := found.TransitionTo(next); err != nil {
		return nil, err
	}

	if err := u.bookingRepo.UpdateStatus(ctx, u.pool, bookingID, found.Status()); err != nil {
		return nil, errs.Wrap(err, "failed to update booking status")
	}

	return u.bookingRepo.FindViewByID(ctx, bookingID)
}
