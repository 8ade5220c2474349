package payment

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	amountCents   int64
	method        Method
	provider      *string
	phone         *string
	subMethod     *string
	status        Status
	transactionID *string
	adminNotes    *string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewMobileMoneyPayment starts PENDING; an admin settles it later with
// Confirm or Reject.
func NewMobileMoneyPayment(bookingID uuid.UUID, amountCents int64, provider, phone string) (*Payment, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return nil, ErrMissingProvider
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrMissingPhone
	}

	return &Payment{
		id:          uuid.New(),
		bookingID:   bookingID,
		amountCents: amountCents,
		method:      MethodMobileMoney,
		provider:    &provider,
		phone:       &phone,
		status:      StatusPending,
	}, nil
}

// NewCardPayment starts PENDING and is settled in the same request by the
// gateway outcome (see Settle).
func NewCardPayment(bookingID uuid.UUID, amountCents int64) (*Payment, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	return &Payment{
		id:          uuid.New(),
		bookingID:   bookingID,
		amountCents: amountCents,
		method:      MethodCard,
		status:      StatusPending,
	}, nil
}

func NewOtherPayment(bookingID uuid.UUID, amountCents int64, subMethod string) (*Payment, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	subMethod = strings.TrimSpace(subMethod)

	p := &Payment{
		id:          uuid.New(),
		bookingID:   bookingID,
		amountCents: amountCents,
		method:      MethodOther,
		status:      StatusPending,
	}
	if subMethod != "" {
		p.subMethod = &subMethod
	}
	return p, nil
}

func ReconstructPayment(
	id, bookingID uuid.UUID,
	amountCents int64,
	method Method,
	provider, phone, subMethod *string,
	status Status,
	transactionID, adminNotes *string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		bookingID:     bookingID,
		amountCents:   amountCents,
		method:        method,
		provider:      provider,
		phone:         phone,
		subMethod:     subMethod,
		status:        status,
		transactionID: transactionID,
		adminNotes:    adminNotes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Confirm settles a pending payment. Confirming an already finalized payment
// is a conflict, never a silent double-credit.
func (p *Payment) Confirm(confirmationCode string, notes string) error {
	if p.status.IsFinal() {
		return ErrAlreadyFinalized
	}
	code := strings.TrimSpace(confirmationCode)
	if code == "" {
		return ErrEmptyCode
	}

	p.status = StatusConfirmed
	p.transactionID = &code
	notes = strings.TrimSpace(notes)
	if notes != "" {
		p.adminNotes = &notes
	}
	return nil
}

func (p *Payment) Reject(reason string) error {
	if p.status.IsFinal() {
		return ErrAlreadyFinalized
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyReason
	}

	p.status = StatusRejected
	p.adminNotes = &reason
	return nil
}

// Settle records a gateway outcome for a card payment.
func (p *Payment) Settle(approved bool, transactionID string) error {
	if p.status.IsFinal() {
		return ErrAlreadyFinalized
	}

	if approved {
		p.status = StatusConfirmed
	} else {
		p.status = StatusRejected
	}
	transactionID = strings.TrimSpace(transactionID)
	if transactionID != "" {
		p.transactionID = &transactionID
	}
	return nil
}

func (p *Payment) ID() uuid.UUID          { return p.id }
func (p *Payment) BookingID() uuid.UUID   { return p.bookingID }
func (p *Payment) AmountCents() int64     { return p.amountCents }
func (p *Payment) Method() Method         { return p.method }
func (p *Payment) Provider() *string      { return p.provider }
func (p *Payment) Phone() *string         { return p.phone }
func (p *Payment) SubMethod() *string     { return p.subMethod }
func (p *Payment) Status() Status         { return p.status }
func (p *Payment) TransactionID() *string { return p.transactionID }
func (p *Payment) AdminNotes() *string    { return p.adminNotes }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time   { return p.updatedAt }
