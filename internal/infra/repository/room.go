package repository

import (
	"context"
	"time"

	"hotelhub/internal/domain/room"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

const roomColumns = `id, name, room_type, nightly_rate_cents, capacity, size_sqm, amenities, climate, is_active, created_at, updated_at`

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	const q = `
		INSERT INTO rooms (id, name, room_type, nightly_rate_cents, capacity, size_sqm, amenities, climate, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var climate *string
	if c := rm.Climate(); c != nil {
		s := c.String()
		climate = &s
	}

	_, err := r.db.Exec(ctx, q,
		rm.ID(), rm.Name(), rm.Type().String(), rm.NightlyRateCents(),
		rm.Capacity(), rm.SizeSqm(), rm.Amenities(), climate, rm.IsActive(),
	)
	if err != nil {
		return wrapQueryErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	const q = `
		UPDATE rooms
		SET name = $2, room_type = $3, nightly_rate_cents = $4, capacity = $5,
		    size_sqm = $6, amenities = $7, climate = $8, is_active = $9, updated_at = now()
		WHERE id = $1`

	var climate *string
	if c := rm.Climate(); c != nil {
		s := c.String()
		climate = &s
	}

	tag, err := r.db.Exec(ctx, q,
		rm.ID(), rm.Name(), rm.Type().String(), rm.NightlyRateCents(),
		rm.Capacity(), rm.SizeSqm(), rm.Amenities(), climate, rm.IsActive(),
	)
	if err != nil {
		return wrapQueryErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete deactivates the room; booking history keeps its foreign keys.
func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE rooms SET is_active = FALSE, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return wrapQueryErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	q := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	rows, err := r.db.Query(ctx, q, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return scanRoom(rows)
}

func (r *RoomRepository) List(ctx context.Context, onlyActive bool) ([]*room.Room, error) {
	q := `SELECT ` + roomColumns + ` FROM rooms`
	if onlyActive {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

// OccupancySnapshot returns, per room, the checkout of the booking covering
// "now" (if any) and the most recent past checkout. The occupancy
// classification itself lives in the domain layer.
func (r *RoomRepository) OccupancySnapshot(ctx context.Context, now time.Time) ([]*readmodel.RoomOccupancyRM, error) {
	// A CHECKED_IN booking stays "active" past its checkout time so overdue
	// rooms classify correctly; CONFIRMED bookings only count while the stay
	// window covers "now".
	const q = `
		SELECT
			r.id,
			(SELECT b.check_out FROM bookings b
			 WHERE b.room_id = r.id
			   AND (b.status = 'CHECKED_IN'
			        OR (b.status = 'CONFIRMED' AND b.check_in <= $1 AND b.check_out > $1))
			 ORDER BY b.check_out DESC LIMIT 1) AS active_check_out,
			(SELECT b.check_out FROM bookings b
			 WHERE b.room_id = r.id AND b.status IN ('CHECKED_OUT', 'COMPLETED')
			   AND b.check_out <= $1
			 ORDER BY b.check_out DESC LIMIT 1) AS last_check_out
		FROM rooms r
		WHERE r.is_active`

	rows, err := r.db.Query(ctx, q, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load occupancy snapshot", err)
	}
	defer rows.Close()

	var result []*readmodel.RoomOccupancyRM
	for rows.Next() {
		var rm readmodel.RoomOccupancyRM
		if err := rows.Scan(&rm.RoomID, &rm.ActiveCheckOut, &rm.LastCheckOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupancy rows", err)
	}
	return result, nil
}

func scanRoom(rows pgx.Rows) (*room.Room, error) {
	var (
		id                   uuid.UUID
		name                 string
		roomTypeRaw          string
		nightlyRateCents     int64
		capacity             int
		sizeSqm              *int
		amenities            []string
		climateRaw           *string
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := rows.Scan(
		&id, &name, &roomTypeRaw, &nightlyRateCents, &capacity,
		&sizeSqm, &amenities, &climateRaw, &isActive, &createdAt, &updatedAt,
	); err != nil {
		return nil, infra.WrapRepoErr("failed to scan room row", err)
	}

	roomType, err := room.NewRoomType(roomTypeRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored room type is invalid", err)
	}

	var climate *room.ClimateOption
	if climateRaw != nil {
		c, err := room.NewClimateOption(*climateRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("stored climate option is invalid", err)
		}
		climate = &c
	}

	return room.ReconstructRoom(
		id, name, roomType, nightlyRateCents, capacity, sizeSqm,
		amenities, climate, isActive, createdAt, updatedAt,
	), nil
}
