package api

import (
	"errors"
	"net/http"

	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Initiate a mobile money payment
// @Description Record a pending mobile money payment for a booking; an admin confirms it later
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.MobilePaymentRequest true "Mobile payment"
// @Success 201 {object} readmodel.PaymentRM
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments/mobile [post]
func (h *PaymentHandler) InitiateMobile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.MobilePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.paymentUseCase.InitiateMobile(c.Request.Context(), userID, usecase.InitiateMobilePaymentInput{
		BookingID: req.BookingID,
		Provider:  req.Provider,
		Phone:     req.Phone,
	})
	if err != nil {
		h.respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rm)
}

// @Summary Pay by card
// @Description Charge the card gateway and settle the payment synchronously
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CardPaymentRequest true "Card payment"
// @Success 201 {object} readmodel.PaymentRM
// @Failure 402 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments/card [post]
func (h *PaymentHandler) PayByCard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CardPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.paymentUseCase.PayByCard(c.Request.Context(), userID, usecase.CardPaymentInput{
		BookingID: req.BookingID,
		CardToken: req.CardToken,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentDeclined) {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment was declined",
			})
			return
		}
		h.respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rm)
}

// @Summary Get a payment
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} readmodel.PaymentRM
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID",
		})
		return
	}

	rm, err := h.paymentUseCase.Get(c.Request.Context(), id)
	if err != nil {
		h.respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary List pending payments
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.PaymentRM
// @Router /admin/payments/pending [get]
func (h *PaymentHandler) ListPending(c *gin.Context) {
	list, err := h.paymentUseCase.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, list)
}

// @Summary Confirm a payment
// @Description Settle a pending payment, confirm its booking and credit loyalty points
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body reqdto.ConfirmPaymentRequest true "Confirmation"
// @Success 200 {object} readmodel.PaymentRM
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/payments/{id}/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID",
		})
		return
	}

	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.paymentUseCase.Confirm(c.Request.Context(), id, req.ConfirmationCode, req.Notes)
	if err != nil {
		h.respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Reject a payment
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body reqdto.RejectPaymentRequest true "Rejection"
// @Success 200 {object} readmodel.PaymentRM
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/payments/{id}/reject [post]
func (h *PaymentHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID",
		})
		return
	}

	var req reqdto.RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.paymentUseCase.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

func (h *PaymentHandler) respondPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Payment not found",
		})
	case errors.Is(err, usecase.ErrBookingNotFound), errors.Is(err, usecase.ErrNotBookingOwner):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, usecase.ErrPaymentFinalized):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Payment already finalized",
		})
	case errors.Is(err, usecase.ErrBookingNotPaying):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking is not awaiting payment",
		})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
