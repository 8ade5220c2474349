package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type PaymentRM struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"booking_id"`
	AmountCents   int64     `json:"amount_cents"`
	Method        string    `json:"method"`
	Provider      *string   `json:"provider,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	SubMethod     *string   `json:"sub_method,omitempty"`
	Status        string    `json:"status"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	AdminNotes    *string   `json:"admin_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
