package booking

import (
	"errors"
	"time"

	"hotelhub/internal/domain/room"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayPeriod    = errors.New("check-out must be after check-in")
	ErrInvalidGuestCount    = errors.New("guest count must be positive")
	ErrGuestsExceedCapacity = errors.New("guest count exceeds room capacity")
	ErrNegativePrice        = errors.New("price cannot be negative")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidTransition    = errors.New("booking status transition not allowed")
	ErrNotCancellable       = errors.New("booking can no longer be cancelled")
	ErrCancelDeadlinePassed = errors.New("cancellation deadline has passed")
	ErrRoomInactive         = errors.New("room is not active")
)

// CancellationWindow is how long before check-in a nightly booking stays
// freely cancellable.
const CancellationWindow = 24 * time.Hour

type Booking struct {
	id             uuid.UUID
	roomID         uuid.UUID
	userID         uuid.UUID
	kind           Kind
	period         StayPeriod
	guests         GuestCount
	status         Status
	paymentStatus  PaymentStatus
	total          Money
	cancelDeadline *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewNightlyBooking prices a standard stay from the room's stored nightly
// rate and creates it PENDING, awaiting payment and staff confirmation.
func NewNightlyBooking(rm *room.Room, userID uuid.UUID, period StayPeriod, guests int) (*Booking, error) {
	if !rm.IsActive() {
		return nil, ErrRoomInactive
	}

	guestCount, err := NewGuestCount(guests, rm.Capacity())
	if err != nil {
		return nil, err
	}

	total, err := NewMoney(room.NightlyPriceCents(rm.NightlyRateCents(), period.Nights()))
	if err != nil {
		return nil, err
	}

	deadline := period.CheckIn().Add(-CancellationWindow)

	return &Booking{
		id:             uuid.New(),
		roomID:         rm.ID(),
		userID:         userID,
		kind:           KindNightly,
		period:         period,
		guests:         guestCount,
		status:         StatusPending,
		paymentStatus:  PaymentPending,
		total:          total,
		cancelDeadline: &deadline,
	}, nil
}

// NewHourlyBooking is the front-desk flow: priced from the shared hourly
// rate table, checked in immediately, checkout exactly hours after check-in.
func NewHourlyBooking(rm *room.Room, userID uuid.UUID, checkIn time.Time, hours int, climate room.ClimateOption, guests int) (*Booking, error) {
	if !rm.IsActive() {
		return nil, ErrRoomInactive
	}

	priceCents, err := room.HourlyPriceCents(rm.Type(), climate, hours)
	if err != nil {
		return nil, err
	}
	total, err := NewMoney(priceCents)
	if err != nil {
		return nil, err
	}

	period, err := NewStayPeriod(checkIn, checkIn.Add(time.Duration(hours)*time.Hour))
	if err != nil {
		return nil, err
	}

	guestCount, err := NewGuestCount(guests, rm.Capacity())
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:            uuid.New(),
		roomID:        rm.ID(),
		userID:        userID,
		kind:          KindHourly,
		period:        period,
		guests:        guestCount,
		status:        StatusCheckedIn,
		paymentStatus: PaymentConfirmed,
		total:         total,
	}, nil
}

func ReconstructBooking(
	id, roomID, userID uuid.UUID,
	kind Kind,
	period StayPeriod,
	guests GuestCount,
	status Status,
	paymentStatus PaymentStatus,
	total Money,
	cancelDeadline *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		roomID:         roomID,
		userID:         userID,
		kind:           kind,
		period:         period,
		guests:         guests,
		status:         status,
		paymentStatus:  paymentStatus,
		total:          total,
		cancelDeadline: cancelDeadline,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// TransitionTo moves the booking along the lifecycle table; skipping states
// or leaving a terminal state fails with ErrInvalidTransition.
func (b *Booking) TransitionTo(next Status) error {
	if !CanTransition(b.status, next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// Cancel is the guest-initiated path: only PENDING or CONFIRMED bookings,
// and only before the cancellation deadline.
func (b *Booking) Cancel(now time.Time) error {
	if !CanTransition(b.status, StatusCancelled) {
		return ErrNotCancellable
	}
	if b.cancelDeadline != nil && now.After(*b.cancelDeadline) {
		return ErrCancelDeadlinePassed
	}
	b.status = StatusCancelled
	return nil
}

// ApplyPaymentOutcome records the owning payment's settled state and, on
// confirmation, advances a PENDING booking to CONFIRMED.
func (b *Booking) ApplyPaymentOutcome(outcome PaymentStatus) {
	b.paymentStatus = outcome
	if outcome == PaymentConfirmed && CanTransition(b.status, StatusConfirmed) {
		b.status = StatusConfirmed
	}
}

func (b *Booking) HasExpired(now time.Time) bool {
	return now.After(b.period.CheckOut())
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) RoomID() uuid.UUID            { return b.roomID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Kind() Kind                   { return b.kind }
func (b *Booking) Period() StayPeriod           { return b.period }
func (b *Booking) Guests() GuestCount           { return b.guests }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Total() Money                 { return b.total }
func (b *Booking) CancelDeadline() *time.Time   { return b.cancelDeadline }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
