package readmodel

import "time"

// AdminDashboardRM aggregates the numbers the admin landing page polls for.
type AdminDashboardRM struct {
	TotalRooms      int64    `json:"total_rooms"`
	ActiveRooms     int64    `json:"active_rooms"`
	TotalUsers      int64    `json:"total_users"`
	TotalBookings   int64    `json:"total_bookings"`
	PendingBookings int64    `json:"pending_bookings"`
	PendingPayments int64    `json:"pending_payments"`
	RevenueCents    int64    `json:"revenue_cents"`
	TotalReviews    int64    `json:"total_reviews"`
	AverageRating   *float64 `json:"average_rating,omitempty"`
}

// ManagerRoomRM is one tile on the front-desk board: the room plus the
// booking facts needed to color it by remaining time.
type ManagerRoomRM struct {
	RoomRM
	CurrentBookingEnd *time.Time `json:"current_booking_end,omitempty"`
	MinutesLeft       *int64     `json:"minutes_left,omitempty"`
}

type ManagerDashboardRM struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Rooms       []ManagerRoomRM `json:"rooms"`
	Occupied    int             `json:"occupied"`
	Available   int             `json:"available"`
	InBuffer    int             `json:"in_buffer"`
	Overdue     int             `json:"overdue"`
}
