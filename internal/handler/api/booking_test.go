//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotelhub/internal/domain/booking"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
	userID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockBooking)
	s.userID = uuid.New()

	// Stand-in for the auth middleware.
	authed := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		c.Next()
	}

	s.router.POST("/bookings", authed, s.handler.Create)
	s.router.GET("/bookings", authed, s.handler.ListMine)
	s.router.GET("/bookings/:id", authed, s.handler.Get)
	s.router.DELETE("/bookings/:id", authed, s.handler.Cancel)
	s.router.PATCH("/admin/bookings/:id/status", s.handler.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) bookingRM(status string) *readmodel.BookingRM {
	checkIn := time.Date(2025, 12, 15, 14, 0, 0, 0, time.UTC)
	return &readmodel.BookingRM{
		ID:            uuid.New(),
		RoomID:        uuid.New(),
		RoomName:      "Chambre 12",
		UserID:        s.userID,
		Kind:          "NIGHTLY",
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 3),
		Guests:        2,
		Status:        status,
		PaymentStatus: "PENDING",
		TotalCents:    54000,
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	roomID := uuid.New()
	checkIn := time.Date(2025, 12, 15, 14, 0, 0, 0, time.UTC)
	reqBody := map[string]any{
		"room_id":   roomID,
		"check_in":  checkIn,
		"check_out": checkIn.AddDate(0, 0, 3),
		"guests":    2,
	}

	s.Run("success: returns 201 with the booking", func() {
		rm := s.bookingRM("PENDING")
		s.mockBooking.EXPECT().Create(gomock.Any(), s.userID, usecase.CreateBookingInput{
			RoomID:   roomID,
			CheckIn:  checkIn,
			CheckOut: checkIn.AddDate(0, 0, 3),
			Guests:   2,
		}).Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response readmodel.BookingRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("PENDING", response.Status)
		s.Equal(int64(54000), response.TotalCents)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "not authenticated")
	})

	s.Run("error: 400 on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"room_id": roomID}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{"room missing", usecase.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
			{"dates already taken", usecase.ErrRoomUnavailable, http.StatusConflict, "not available"},
			{"capacity exceeded", booking.ErrGuestsExceedCapacity, http.StatusBadRequest, ""},
			{"room inactive", booking.ErrRoomInactive, http.StatusBadRequest, ""},
			{"internal error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBooking.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns the booking", func() {
		rm := s.bookingRM("CONFIRMED")
		s.mockBooking.EXPECT().GetMine(gomock.Any(), s.userID, bookingID).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response readmodel.BookingRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CONFIRMED", response.Status)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: someone else's booking reads as 404", func() {
		s.mockBooking.EXPECT().GetMine(gomock.Any(), s.userID, bookingID).
			Return(nil, usecase.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204", func() {
		s.mockBooking.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 after the deadline", func() {
		s.mockBooking.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
			Return(booking.ErrCancelDeadlinePassed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 422 once checked in", func() {
		s.mockBooking.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
			Return(booking.ErrNotCancellable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: unknown booking is 404", func() {
		s.mockBooking.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
			Return(usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/status"

	s.Run("success: advances the booking", func() {
		rm := s.bookingRM("CHECKED_IN")
		s.mockBooking.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusCheckedIn).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "CHECKED_IN"}, "")

		var response readmodel.BookingRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CHECKED_IN", response.Status)
	})

	s.Run("error: 400 on unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "TELEPORTED"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown booking status")
	})

	s.Run("error: 422 on an illegal transition", func() {
		s.mockBooking.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusCompleted).
			Return(nil, booking.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "COMPLETED"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "transition not allowed")
	})
}
