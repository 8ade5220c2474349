//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotelhub/internal/handler/api"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/readmodel"
	"hotelhub/tests/common/httptest"
	usecasemock "hotelhub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockPayment *usecasemock.MockPaymentUseCase
	handler     *api.PaymentHandler
	userID      uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayment = usecasemock.NewMockPaymentUseCase(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockPayment)
	s.userID = uuid.New()

	// Stand-in for the auth middleware.
	authed := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		c.Next()
	}

	s.router.POST("/payments/mobile", authed, s.handler.InitiateMobile)
	s.router.POST("/payments/card", authed, s.handler.PayByCard)
	s.router.GET("/payments/:id", authed, s.handler.Get)
	s.router.POST("/admin/payments/:id/confirm", s.handler.Confirm)
	s.router.POST("/admin/payments/:id/reject", s.handler.Reject)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func paymentRM(bookingID uuid.UUID, method, status string) *readmodel.PaymentRM {
	return &readmodel.PaymentRM{
		ID:          uuid.New(),
		BookingID:   bookingID,
		AmountCents: 54000,
		Method:      method,
		Status:      status,
	}
}

func (s *PaymentHandlerTestSuite) TestInitiateMobile() {
	url := "/payments/mobile"
	bookingID := uuid.New()
	reqBody := map[string]any{
		"booking_id": bookingID,
		"provider":   "Orange Money",
		"phone":      "+33600000001",
	}

	s.Run("success: returns 201 with a pending payment", func() {
		rm := paymentRM(bookingID, "MOBILE_MONEY", "PENDING")
		s.mockPayment.EXPECT().InitiateMobile(gomock.Any(), s.userID, usecase.InitiateMobilePaymentInput{
			BookingID: bookingID,
			Provider:  "Orange Money",
			Phone:     "+33600000001",
		}).Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response readmodel.PaymentRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("PENDING", response.Status)
		s.Equal(bookingID, response.BookingID)
	})

	s.Run("error: 400 when provider or phone is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"booking_id": bookingID}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 when the booking is not awaiting payment", func() {
		s.mockPayment.EXPECT().InitiateMobile(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, usecase.ErrBookingNotPaying).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not awaiting payment")
	})

	s.Run("error: someone else's booking reads as 404", func() {
		s.mockPayment.EXPECT().InitiateMobile(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, usecase.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *PaymentHandlerTestSuite) TestPayByCard() {
	url := "/payments/card"
	bookingID := uuid.New()
	reqBody := map[string]any{
		"booking_id": bookingID,
		"card_token": "tok_visa",
	}

	s.Run("success: returns 201 with a confirmed payment", func() {
		rm := paymentRM(bookingID, "CARD", "CONFIRMED")
		s.mockPayment.EXPECT().PayByCard(gomock.Any(), s.userID, usecase.CardPaymentInput{
			BookingID: bookingID,
			CardToken: "tok_visa",
		}).Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response readmodel.PaymentRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("CONFIRMED", response.Status)
	})

	s.Run("error: 402 when the gateway declines", func() {
		s.mockPayment.EXPECT().PayByCard(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, usecase.ErrPaymentDeclined).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "declined")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "not authenticated")
	})
}

func (s *PaymentHandlerTestSuite) TestConfirm() {
	paymentID := uuid.New()
	url := "/admin/payments/" + paymentID.String() + "/confirm"
	reqBody := map[string]any{
		"confirmation_code": "OM-12345",
		"notes":             "matched the operator receipt",
	}

	s.Run("success: settles the payment", func() {
		rm := paymentRM(uuid.New(), "MOBILE_MONEY", "CONFIRMED")
		s.mockPayment.EXPECT().Confirm(gomock.Any(), paymentID, "OM-12345", "matched the operator receipt").
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response readmodel.PaymentRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CONFIRMED", response.Status)
	})

	s.Run("error: 409 when already finalized", func() {
		s.mockPayment.EXPECT().Confirm(gomock.Any(), paymentID, "OM-12345", gomock.Any()).
			Return(nil, usecase.ErrPaymentFinalized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already finalized")
	})

	s.Run("error: 404 on unknown payment", func() {
		s.mockPayment.EXPECT().Confirm(gomock.Any(), paymentID, "OM-12345", gomock.Any()).
			Return(nil, usecase.ErrPaymentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment not found")
	})

	s.Run("error: 400 without a confirmation code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"notes": "x"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *PaymentHandlerTestSuite) TestReject() {
	paymentID := uuid.New()
	url := "/admin/payments/" + paymentID.String() + "/reject"
	reqBody := map[string]any{"reason": "no matching operator transfer"}

	s.Run("success: rejects the payment", func() {
		rm := paymentRM(uuid.New(), "MOBILE_MONEY", "REJECTED")
		s.mockPayment.EXPECT().Reject(gomock.Any(), paymentID, "no matching operator transfer").
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response readmodel.PaymentRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("REJECTED", response.Status)
	})

	s.Run("error: 409 when already finalized", func() {
		s.mockPayment.EXPECT().Reject(gomock.Any(), paymentID, gomock.Any()).
			Return(nil, usecase.ErrPaymentFinalized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already finalized")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockPayment.EXPECT().Reject(gomock.Any(), paymentID, gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
