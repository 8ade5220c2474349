package repository

import (
	"context"
	"time"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const q = `
		INSERT INTO users (id, name, email, phone, password_hash, role, is_active, loyalty_points)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q,
		u.ID(), u.Name(), u.Email().String(), u.Phone(),
		u.PasswordHash(), u.Role().String(), u.IsActive(), u.LoyaltyPoints(),
	)
	if err != nil {
		return wrapQueryErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const q = `
		SELECT id, name, email, phone, password_hash, role, is_active, loyalty_points, created_at, updated_at
		FROM users
		WHERE email = $1`

	return r.scanUser(r.db.QueryRow(ctx, q, email), "failed to find user by email")
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const q = `
		SELECT id, name, email, phone, password_hash, role, is_active, loyalty_points, created_at, updated_at
		FROM users
		WHERE id = $1`

	return r.scanUser(r.db.QueryRow(ctx, q, id), "failed to find user by ID")
}

func (r *UserRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*readmodel.UserProfileRM, error) {
	const q = `
		SELECT id, name, email, phone, role, is_active, loyalty_points, created_at
		FROM users
		WHERE id = $1`

	var rm readmodel.UserProfileRM
	err := r.db.QueryRow(ctx, q, id).Scan(
		&rm.ID, &rm.Name, &rm.Email, &rm.Phone, &rm.Role,
		&rm.IsActive, &rm.LoyaltyPoints, &rm.CreatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find user profile", err)
	}
	return &rm, nil
}

func (r *UserRepository) ListAdminUsers(ctx context.Context) ([]*readmodel.AdminUserRM, error) {
	const q = `
		SELECT
			u.id, u.name, u.email, u.phone, u.role, u.is_active, u.loyalty_points,
			count(DISTINCT b.id) AS booking_count,
			count(DISTINCT rv.id) AS review_count,
			coalesce(sum(b.total_cents) FILTER (WHERE b.payment_status = 'CONFIRMED'), 0) AS total_spent_cents,
			u.created_at
		FROM users u
		LEFT JOIN bookings b ON b.user_id = u.id AND b.status <> 'CANCELLED'
		LEFT JOIN reviews rv ON rv.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*readmodel.AdminUserRM
	for rows.Next() {
		var rm readmodel.AdminUserRM
		if err := rows.Scan(
			&rm.ID, &rm.Name, &rm.Email, &rm.Phone, &rm.Role, &rm.IsActive, &rm.LoyaltyPoints,
			&rm.BookingCount, &rm.ReviewCount, &rm.TotalSpentCents, &rm.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return result, nil
}

func (r *UserRepository) AddLoyaltyPoints(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, delta int) error {
	const q = `
		UPDATE users
		SET loyalty_points = greatest(loyalty_points + $2, 0), updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, userID, delta)
	if err != nil {
		return wrapQueryErr("failed to add loyalty points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *UserRepository) scanUser(row rowScanner, msg string) (*user.User, error) {
	var (
		id                   uuid.UUID
		name                 string
		emailRaw             string
		phone                string
		passwordHash         string
		roleRaw              string
		isActive             bool
		loyaltyPoints        int
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &name, &emailRaw, &phone, &passwordHash, &roleRaw, &isActive, &loyaltyPoints, &createdAt, &updatedAt)
	if err != nil {
		return nil, wrapQueryErr(msg, err)
	}

	email, err := user.NewEmail(emailRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}
	role, err := user.NewRole(roleRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored role is invalid", err)
	}

	return user.ReconstructUser(
		id, name, email, phone, passwordHash, role,
		isActive, loyaltyPoints, createdAt, updatedAt,
	), nil
}
