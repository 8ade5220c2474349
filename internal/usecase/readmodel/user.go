package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type UserProfileRM struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Role          string    `json:"role"`
	IsActive      bool      `json:"is_active"`
	LoyaltyPoints int32     `json:"loyalty_points"`
	CreatedAt     time.Time `json:"created_at"`
}

// AdminUserRM includes the server-computed aggregates the admin user table
// shows alongside the profile.
type AdminUserRM struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Role            string    `json:"role"`
	IsActive        bool      `json:"is_active"`
	LoyaltyPoints   int32     `json:"loyalty_points"`
	BookingCount    int64     `json:"booking_count"`
	ReviewCount     int64     `json:"review_count"`
	TotalSpentCents int64     `json:"total_spent_cents"`
	CreatedAt       time.Time `json:"created_at"`
}
