package repository

import (
	"context"

	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/readmodel"
)

type DashboardRepository struct {
	db db.DBTX
}

func NewDashboardRepository(dbtx db.DBTX) *DashboardRepository {
	return &DashboardRepository{db: dbtx}
}

// AdminStats aggregates everything in one round trip; revenue only counts
// confirmed payments.
func (r *DashboardRepository) AdminStats(ctx context.Context) (*readmodel.AdminDashboardRM, error) {
	const q = `
		SELECT
			(SELECT count(*) FROM rooms),
			(SELECT count(*) FROM rooms WHERE is_active),
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM bookings),
			(SELECT count(*) FROM bookings WHERE status = 'PENDING'),
			(SELECT count(*) FROM payments WHERE status = 'PENDING'),
			(SELECT coalesce(sum(amount_cents), 0) FROM payments WHERE status = 'CONFIRMED'),
			(SELECT count(*) FROM reviews),
			(SELECT avg(rating)::float8 FROM reviews)`

	var rm readmodel.AdminDashboardRM
	err := r.db.QueryRow(ctx, q).Scan(
		&rm.TotalRooms, &rm.ActiveRooms, &rm.TotalUsers,
		&rm.TotalBookings, &rm.PendingBookings, &rm.PendingPayments,
		&rm.RevenueCents, &rm.TotalReviews, &rm.AverageRating,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load admin dashboard stats", err)
	}
	return &rm, nil
}
