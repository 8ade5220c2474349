package usecase

import (
	"context"
	"errors"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/payment"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPaymentNotFound  = errs.New("payment not found")
	ErrPaymentFinalized = errs.New("payment already finalized")
	ErrPaymentDeclined  = errs.New("payment declined by gateway")
	ErrBookingNotPaying = errs.New("booking is not awaiting payment")
)

// Loyalty points accrue at one point per euro actually collected.
const loyaltyPointsPerEuro = 1

type InitiateMobilePaymentInput struct {
	BookingID uuid.UUID
	Provider  string
	Phone     string
}

type CardPaymentInput struct {
	BookingID uuid.UUID
	CardToken string
}

type PaymentUseCase interface {
	InitiateMobile(ctx context.Context, userID uuid.UUID, input InitiateMobilePaymentInput) (*readmodel.PaymentRM, error)
	PayByCard(ctx context.Context, userID uuid.UUID, input CardPaymentInput) (*readmodel.PaymentRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.PaymentRM, error)
	ListPending(ctx context.Context) ([]*readmodel.PaymentRM, error)
	Confirm(ctx context.Context, id uuid.UUID, confirmationCode, notes string) (*readmodel.PaymentRM, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (*readmodel.PaymentRM, error)
}

type paymentUseCase struct {
	pool        *pgxpool.Pool
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	userRepo    UserRepository
	gateway     CardGateway
}

func NewPaymentUseCase(
	pool *pgxpool.Pool,
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	userRepo UserRepository,
	gateway CardGateway,
) PaymentUseCase {
	return &paymentUseCase{
		pool:        pool,
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		gateway:     gateway,
	}
}

// InitiateMobile records a mobile money payment in PENDING. The money moves
// out of band; an admin confirms against the provider statement later.
func (u *paymentUseCase) InitiateMobile(ctx context.Context, userID uuid.UUID, input InitiateMobilePaymentInput) (*readmodel.PaymentRM, error) {
	b, err := u.payableBooking(ctx, userID, input.BookingID)
	if err != nil {
		return nil, err
	}

	p, err := payment.NewMobileMoneyPayment(b.ID(), b.Total().Cents(), input.Provider, input.Phone)
	if err != nil {
		return nil, err
	}

	if err := u.paymentRepo.Create(ctx, u.pool, p); err != nil {
		return nil, errs.Wrap(err, "failed to create payment")
	}
	return u.paymentRepo.FindViewByID(ctx, p.ID())
}

// PayByCard charges the gateway synchronously and settles the payment in the
// same request. A decline still persists the rejected payment for the audit
// trail.
func (u *paymentUseCase) PayByCard(ctx context.Context, userID uuid.UUID, input CardPaymentInput) (*readmodel.PaymentRM, error) {
	b, err := u.payableBooking(ctx, userID, input.BookingID)
	if err != nil {
		return nil, err
	}

	p, err := payment.NewCardPayment(b.ID(), b.Total().Cents())
	if err != nil {
		return nil, err
	}

	outcome, err := u.gateway.Charge(ctx, CardCharge{
		BookingID:   b.ID(),
		AmountCents: b.Total().Cents(),
		CardToken:   input.CardToken,
	})
	if err != nil {
		return nil, errs.Wrap(err, "card gateway charge failed")
	}

	if err := p.Settle(outcome.Approved, outcome.TransactionID); err != nil {
		return nil, err
	}

	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	if err := u.paymentRepo.Create(ctx, tx, p); err != nil {
		return nil, errs.Wrap(err, "failed to create payment")
	}
	if outcome.Approved {
		if err := u.settleBooking(ctx, tx, b, booking.PaymentConfirmed); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Wrap(err, "failed to commit payment")
	}

	if !outcome.Approved {
		return nil, ErrPaymentDeclined
	}
	return u.paymentRepo.FindViewByID(ctx, p.ID())
}

func (u *paymentUseCase) Get(ctx context.Context, id uuid.UUID) (*readmodel.PaymentRM, error) {
	view, err := u.paymentRepo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPaymentNotFound)
		}
		return nil, errs.Wrap(err, "failed to find payment")
	}
	return view, nil
}

func (u *paymentUseCase) ListPending(ctx context.Context) ([]*readmodel.PaymentRM, error) {
	list, err := u.paymentRepo.ListPending(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list pending payments")
	}
	return list, nil
}

// Confirm settles a pending payment, mirrors the outcome onto the booking and
// credits loyalty points, all in one transaction. Confirming twice is a
// conflict, so points can never be credited twice.
func (u *paymentUseCase) Confirm(ctx context.Context, id uuid.UUID, confirmationCode, notes string) (*readmodel.PaymentRM, error) {
	return u.finalize(ctx, id, func(p *payment.Payment) error {
		return p.Confirm(confirmationCode, notes)
	})
}

func (u *paymentUseCase) Reject(ctx context.Context, id uuid.UUID, reason string) (*readmodel.PaymentRM, error) {
	return u.finalize(ctx, id, func(p *payment.Payment) error {
		return p.Reject(reason)
	})
}

func (u *paymentUseCase) finalize(ctx context.Context, id uuid.UUID, settle func(*payment.Payment) error) (*readmodel.PaymentRM, error) {
	p, err := u.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPaymentNotFound)
		}
		return nil, errs.Wrap(err, "failed to find payment")
	}

	if err := settle(p); err != nil {
		if errors.Is(err, payment.ErrAlreadyFinalized) {
			return nil, errs.Mark(err, ErrPaymentFinalized)
		}
		return nil, err
	}

	b, err := u.bookingRepo.FindByID(ctx, p.BookingID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to find booking for payment")
	}

	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	if err := u.paymentRepo.UpdateOutcome(ctx, tx, p); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrPaymentFinalized)
		}
		return nil, errs.Wrap(err, "failed to update payment")
	}

	outcome := booking.PaymentRejected
	if p.Status() == payment.StatusConfirmed {
		outcome = booking.PaymentConfirmed
	}
	if err := u.settleBooking(ctx, tx, b, outcome); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Wrap(err, "failed to commit payment outcome")
	}

	return u.paymentRepo.FindViewByID(ctx, id)
}

// settleBooking mirrors the payment outcome onto the booking row and, when
// confirmed, credits the guest's loyalty balance.
func (u *paymentUseCase) settleBooking(ctx context.Context, tx db.DBTX, b *booking.Booking, outcome booking.PaymentStatus) error {
	b.ApplyPaymentOutcome(outcome)
	if err := u.bookingRepo.UpdatePaymentOutcome(ctx, tx, b.ID(), b.Status(), b.PaymentStatus()); err != nil {
		return errs.Wrap(err, "failed to update booking payment state")
	}

	if outcome == booking.PaymentConfirmed {
		points := int(b.Total().Cents()/100) * loyaltyPointsPerEuro
		if points > 0 {
			if err := u.userRepo.AddLoyaltyPoints(ctx, tx, b.UserID(), points); err != nil {
				return errs.Wrap(err, "failed to credit loyalty points")
			}
		}
	}
	return nil
}

func (u *paymentUseCase) payableBooking(ctx context.Context, userID, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	if b.UserID() != userID {
		return nil, ErrNotBookingOwner
	}
	if b.Status() != booking.StatusPending || b.PaymentStatus() != booking.PaymentPending {
		return nil, ErrBookingNotPaying
	}
	return b, nil
}
