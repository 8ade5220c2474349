package request

import (
	"github.com/google/uuid"
)

type MobilePaymentRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Provider  string    `json:"provider" binding:"required"`
	Phone     string    `json:"phone" binding:"required"`
}

type CardPaymentRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	CardToken string    `json:"card_token" binding:"required"`
}

type ConfirmPaymentRequest struct {
	ConfirmationCode string `json:"confirmation_code" binding:"required"`
	Notes            string `json:"notes"`
}

type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}
