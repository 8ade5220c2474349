package repository

import (
	"context"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// Create relies on the bookings exclusion constraint for overlap safety;
// a violation surfaces as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	const q = `
		INSERT INTO bookings (id, room_id, user_id, kind, check_in, check_out, guests, status, payment_status, total_cents, cancel_deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := dbtx.Exec(ctx, q,
		b.ID(), b.RoomID(), b.UserID(), b.Kind().String(),
		b.Period().CheckIn(), b.Period().CheckOut(), b.Guests().Value(),
		b.Status().String(), b.PaymentStatus().String(), b.Total().Cents(), b.CancelDeadline(),
	)
	if err != nil {
		return wrapQueryErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const q = `
		SELECT id, room_id, user_id, kind, check_in, check_out, guests, status, payment_status, total_cents, cancel_deadline, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var (
		bookingID, roomID, userID uuid.UUID
		kindRaw                   string
		checkIn, checkOut         time.Time
		guests                    int
		statusRaw, payStatusRaw   string
		totalCents                int64
		cancelDeadline            *time.Time
		createdAt, updatedAt      time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&bookingID, &roomID, &userID, &kindRaw, &checkIn, &checkOut, &guests,
		&statusRaw, &payStatusRaw, &totalCents, &cancelDeadline, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find booking", err)
	}

	period, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, infra.WrapRepoErr("stored stay period is invalid", err)
	}
	guestCount, err := booking.NewGuestCount(guests, 0)
	if err != nil {
		return nil, infra.WrapRepoErr("stored guest count is invalid", err)
	}
	total, err := booking.NewMoney(totalCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored total is invalid", err)
	}
	status, err := booking.NewStatus(statusRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored status is invalid", err)
	}

	return booking.ReconstructBooking(
		bookingID, roomID, userID,
		booking.Kind(kindRaw), period, guestCount, status,
		booking.PaymentStatus(payStatusRaw), total, cancelDeadline,
		createdAt, updatedAt,
	), nil
}

const bookingViewQuery = `
	SELECT b.id, b.room_id, r.name, b.user_id, u.email, b.kind,
	       b.check_in, b.check_out, b.guests, b.status, b.payment_status,
	       b.total_cents, b.cancel_deadline, b.created_at, b.updated_at
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN users u ON u.id = b.user_id`

func (r *BookingRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	q := bookingViewQuery + ` WHERE b.id = $1`

	var rm readmodel.BookingRM
	err := r.db.QueryRow(ctx, q, id).Scan(
		&rm.ID, &rm.RoomID, &rm.RoomName, &rm.UserID, &rm.UserEmail, &rm.Kind,
		&rm.CheckIn, &rm.CheckOut, &rm.Guests, &rm.Status, &rm.PaymentStatus,
		&rm.TotalCents, &rm.CancelDeadline, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find booking view", err)
	}
	return &rm, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error) {
	const q = `
		SELECT b.id, b.room_id, r.name, b.kind, b.check_in, b.check_out,
		       b.status, b.payment_status, b.total_cents, b.created_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingListRM
	for rows.Next() {
		var rm readmodel.BookingListRM
		if err := rows.Scan(
			&rm.ID, &rm.RoomID, &rm.RoomName, &rm.Kind, &rm.CheckIn, &rm.CheckOut,
			&rm.Status, &rm.PaymentStatus, &rm.TotalCents, &rm.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*readmodel.BookingRM, error) {
	q := bookingViewQuery + ` ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		var rm readmodel.BookingRM
		if err := rows.Scan(
			&rm.ID, &rm.RoomID, &rm.RoomName, &rm.UserID, &rm.UserEmail, &rm.Kind,
			&rm.CheckIn, &rm.CheckOut, &rm.Guests, &rm.Status, &rm.PaymentStatus,
			&rm.TotalCents, &rm.CancelDeadline, &rm.CreatedAt, &rm.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	const q = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, id, status.String())
	if err != nil {
		return wrapQueryErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdatePaymentOutcome(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status, paymentStatus booking.PaymentStatus) error {
	const q = `UPDATE bookings SET status = $2, payment_status = $3, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, id, status.String(), paymentStatus.String())
	if err != nil {
		return wrapQueryErr("failed to update booking payment outcome", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// HasOverlap answers availability checks; booking creation itself never
// trusts this (the exclusion constraint is authoritative).
func (r *BookingRepository) HasOverlap(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1 AND status <> 'CANCELLED'
			  AND tstzrange(check_in, check_out) && tstzrange($2, $3)
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, roomID, checkIn, checkOut).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}
