//go:build unit

package payment_test

import (
	"testing"

	"hotelhub/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMobileMoneyPayment(t *testing.T) {
	bookingID := uuid.New()

	t.Run("starts pending with provider and phone", func(t *testing.T) {
		p, err := payment.NewMobileMoneyPayment(bookingID, 54000, "Orange Money", "+33600000001")
		require.NoError(t, err)

		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, payment.MethodMobileMoney, p.Method())
		assert.Equal(t, "Orange Money", *p.Provider())
		assert.Equal(t, "+33600000001", *p.Phone())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := payment.NewMobileMoneyPayment(bookingID, 0, "Orange Money", "+33600000001")
		assert.ErrorIs(t, err, payment.ErrInvalidAmount)

		_, err = payment.NewMobileMoneyPayment(bookingID, 54000, "  ", "+33600000001")
		assert.ErrorIs(t, err, payment.ErrMissingProvider)

		_, err = payment.NewMobileMoneyPayment(bookingID, 54000, "Orange Money", "")
		assert.ErrorIs(t, err, payment.ErrMissingPhone)
	})
}

func TestPaymentConfirm(t *testing.T) {
	t.Run("settles a pending payment", func(t *testing.T) {
		p, err := payment.NewMobileMoneyPayment(uuid.New(), 54000, "MTN", "+33600000002")
		require.NoError(t, err)

		require.NoError(t, p.Confirm("OM-12345", "matched the operator receipt"))
		assert.Equal(t, payment.StatusConfirmed, p.Status())
		assert.Equal(t, "OM-12345", *p.TransactionID())
		assert.Equal(t, "matched the operator receipt", *p.AdminNotes())
	})

	t.Run("requires a confirmation code", func(t *testing.T) {
		p, err := payment.NewMobileMoneyPayment(uuid.New(), 54000, "MTN", "+33600000002")
		require.NoError(t, err)

		assert.ErrorIs(t, p.Confirm("   ", ""), payment.ErrEmptyCode)
		assert.Equal(t, payment.StatusPending, p.Status())
	})

	t.Run("rejects a second settlement", func(t *testing.T) {
		p, err := payment.NewMobileMoneyPayment(uuid.New(), 54000, "MTN", "+33600000002")
		require.NoError(t, err)
		require.NoError(t, p.Confirm("OM-12345", ""))

		assert.ErrorIs(t, p.Confirm("OM-67890", ""), payment.ErrAlreadyFinalized)
		assert.Equal(t, "OM-12345", *p.TransactionID())
	})
}

func TestPaymentReject(t *testing.T) {
	t.Run("records the reason", func(t *testing.T) {
		p, err := payment.NewMobileMoneyPayment(uuid.New(), 54000, "MTN", "+33600000003")
		require.NoError(t, err)

		require.NoError(t, p.Reject("no matching operator transfer"))
		assert.Equal(t, payment.StatusRejected, p.Status())
		assert.Equal(t, "no matching operator transfer", *p.AdminNotes())
	})

	t.Run("requires a reason", func(t *testing.T) {
		p, err := payment.NewMobileMoneyPayment(uuid.New(), 54000, "MTN", "+33600000003")
		require.NoError(t, err)

		assert.ErrorIs(t, p.Reject(""), payment.ErrEmptyReason)
	})

	t.Run("cannot reject a confirmed payment", func(t *testing.T) {
		p, err := payment.NewMobileMoneyPayment(uuid.New(), 54000, "MTN", "+33600000003")
		require.NoError(t, err)
		require.NoError(t, p.Confirm("OM-11111", ""))

		assert.ErrorIs(t, p.Reject("too late"), payment.ErrAlreadyFinalized)
		assert.Equal(t, payment.StatusConfirmed, p.Status())
	})
}

func TestPaymentSettle(t *testing.T) {
	t.Run("approved card charge confirms", func(t *testing.T) {
		p, err := payment.NewCardPayment(uuid.New(), 7500)
		require.NoError(t, err)

		require.NoError(t, p.Settle(true, "txn_abc123"))
		assert.Equal(t, payment.StatusConfirmed, p.Status())
		assert.Equal(t, "txn_abc123", *p.TransactionID())
	})

	t.Run("declined card charge rejects", func(t *testing.T) {
		p, err := payment.NewCardPayment(uuid.New(), 7500)
		require.NoError(t, err)

		require.NoError(t, p.Settle(false, "txn_def456"))
		assert.Equal(t, payment.StatusRejected, p.Status())
	})

	t.Run("settling twice is a conflict", func(t *testing.T) {
		p, err := payment.NewCardPayment(uuid.New(), 7500)
		require.NoError(t, err)
		require.NoError(t, p.Settle(true, "txn_abc123"))

		assert.ErrorIs(t, p.Settle(false, "txn_replay"), payment.ErrAlreadyFinalized)
		assert.Equal(t, payment.StatusConfirmed, p.Status())
	})
}

func TestMethodRequiresManualConfirmation(t *testing.T) {
	assert.True(t, payment.MethodMobileMoney.RequiresManualConfirmation())
	assert.True(t, payment.MethodOther.RequiresManualConfirmation())
	assert.False(t, payment.MethodCard.RequiresManualConfirmation())
}
