package repository

import (
	"context"
	"time"

	"hotelhub/internal/domain/payment"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) error {
	const q = `
		INSERT INTO payments (id, booking_id, amount_cents, method, provider, phone, sub_method, status, transaction_id, admin_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := dbtx.Exec(ctx, q,
		p.ID(), p.BookingID(), p.AmountCents(), p.Method().String(),
		p.Provider(), p.Phone(), p.SubMethod(), p.Status().String(),
		p.TransactionID(), p.AdminNotes(),
	)
	if err != nil {
		return wrapQueryErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	const q = `
		SELECT id, booking_id, amount_cents, method, provider, phone, sub_method, status, transaction_id, admin_notes, created_at, updated_at
		FROM payments
		WHERE id = $1`

	var (
		paymentID, bookingID       uuid.UUID
		amountCents                int64
		methodRaw, statusRaw       string
		provider, phone, subMethod *string
		transactionID, adminNotes  *string
		createdAt, updatedAt       time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&paymentID, &bookingID, &amountCents, &methodRaw, &provider, &phone,
		&subMethod, &statusRaw, &transactionID, &adminNotes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find payment", err)
	}

	method, err := payment.NewMethod(methodRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored payment method is invalid", err)
	}

	return payment.ReconstructPayment(
		paymentID, bookingID, amountCents, method,
		provider, phone, subMethod,
		payment.Status(statusRaw), transactionID, adminNotes,
		createdAt, updatedAt,
	), nil
}

// UpdateOutcome persists a settled payment; the WHERE guard keeps the update
// idempotent under concurrent confirms (second writer matches zero rows).
func (r *PaymentRepository) UpdateOutcome(ctx context.Context, dbtx db.DBTX, p *payment.Payment) error {
	const q = `
		UPDATE payments
		SET status = $2, transaction_id = $3, admin_notes = $4, updated_at = now()
		WHERE id = $1 AND status = 'PENDING'`

	tag, err := dbtx.Exec(ctx, q, p.ID(), p.Status().String(), p.TransactionID(), p.AdminNotes())
	if err != nil {
		return wrapQueryErr("failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment already finalized", pgx.ErrNoRows, infra.KindConflict)
	}
	return nil
}

func (r *PaymentRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.PaymentRM, error) {
	const q = `
		SELECT id, booking_id, amount_cents, method, provider, phone, sub_method, status, transaction_id, admin_notes, created_at, updated_at
		FROM payments
		WHERE id = $1`

	var rm readmodel.PaymentRM
	err := r.db.QueryRow(ctx, q, id).Scan(
		&rm.ID, &rm.BookingID, &rm.AmountCents, &rm.Method, &rm.Provider, &rm.Phone,
		&rm.SubMethod, &rm.Status, &rm.TransactionID, &rm.AdminNotes, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to find payment view", err)
	}
	return &rm, nil
}

func (r *PaymentRepository) ListPending(ctx context.Context) ([]*readmodel.PaymentRM, error) {
	const q = `
		SELECT id, booking_id, amount_cents, method, provider, phone, sub_method, status, transaction_id, admin_notes, created_at, updated_at
		FROM payments
		WHERE status = 'PENDING'
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending payments", err)
	}
	defer rows.Close()

	var result []*readmodel.PaymentRM
	for rows.Next() {
		var rm readmodel.PaymentRM
		if err := rows.Scan(
			&rm.ID, &rm.BookingID, &rm.AmountCents, &rm.Method, &rm.Provider, &rm.Phone,
			&rm.SubMethod, &rm.Status, &rm.TransactionID, &rm.AdminNotes, &rm.CreatedAt, &rm.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return result, nil
}
