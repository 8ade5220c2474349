package usecase

import (
	"context"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/payment"
	"hotelhub/internal/domain/review"
	"hotelhub/internal/domain/room"
	"hotelhub/internal/domain/user"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindProfileByID(ctx context.Context, id uuid.UUID) (*readmodel.UserProfileRM, error)
	ListAdminUsers(ctx context.Context) ([]*readmodel.AdminUserRM, error)
	AddLoyaltyPoints(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, delta int) error
}

type RoomRepository interface {
	Create(ctx context.Context, rm *room.Room) error
	Update(ctx context.Context, rm *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	List(ctx context.Context, onlyActive bool) ([]*room.Room, error)
	OccupancySnapshot(ctx context.Context, now time.Time) ([]*readmodel.RoomOccupancyRM, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error)
	ListAll(ctx context.Context) ([]*readmodel.BookingRM, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
	UpdatePaymentOutcome(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status, paymentStatus booking.PaymentStatus) error
	HasOverlap(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	UpdateOutcome(ctx context.Context, dbtx db.DBTX, p *payment.Payment) error
	FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.PaymentRM, error)
	ListPending(ctx context.Context) ([]*readmodel.PaymentRM, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rv *review.Review) error
	Update(ctx context.Context, rv *review.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*readmodel.ReviewRM, error)
}

type DashboardRepository interface {
	AdminStats(ctx context.Context) (*readmodel.AdminDashboardRM, error)
}

// CardCharge is the request sent to the external card gateway.
type CardCharge struct {
	BookingID   uuid.UUID
	AmountCents int64
	CardToken   string
}

type CardChargeResult struct {
	Approved      bool
	TransactionID string
	DeclineReason string
}

// CardGateway is the external payment collaborator; card payments settle
// synchronously through it.
type CardGateway interface {
	Charge(ctx context.Context, req CardCharge) (*CardChargeResult, error)
}
