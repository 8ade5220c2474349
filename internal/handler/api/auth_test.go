//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotelhub/internal/domain/loyalty"
	"hotelhub/internal/handler/api"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/readmodel"
	"hotelhub/tests/common/httptest"
	usecasemock "hotelhub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
	userID   uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth)
	s.userID = uuid.New()

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stand-in for the auth middleware.
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) profileRM() *readmodel.UserProfileRM {
	return &readmodel.UserProfileRM{
		ID:            s.userID,
		Name:          "Awa Diallo",
		Email:         "awa@example.com",
		Role:          "CLIENT",
		IsActive:      true,
		LoyaltyPoints: 540,
		CreatedAt:     time.Now().UTC(),
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := map[string]any{
		"name":     "Awa Diallo",
		"email":    "awa@example.com",
		"phone":    "+33600000001",
		"password": "password123",
	}

	s.Run("success: returns 201 with token and profile", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), usecase.RegisterInput{
			Name:     "Awa Diallo",
			Email:    "awa@example.com",
			Phone:    "+33600000001",
			Password: "password123",
		}).Return(&usecase.AuthResult{Token: "test-jwt-token", User: s.profileRM()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("awa@example.com", response.User.Email)
	})

	s.Run("error: 400 on validation failures", func() {
		invalid := []map[string]any{
			{"name": "Awa", "email": "not-an-email", "password": "password123"},
			{"name": "Awa", "email": "awa@example.com", "password": "short"},
			{"email": "awa@example.com", "password": "password123"},
		}
		for _, body := range invalid {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 409 when email is taken", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrEmailConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{"email": "awa@example.com", "password": "password123"}

	s.Run("success: returns 200 with token", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), "awa@example.com", "password123").
			Return(&usecase.AuthResult{Token: "test-jwt-token", User: s.profileRM()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("awa@example.com", response.User.Email)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
			{"inactive account", usecase.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
			{"internal error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuth.EXPECT().Login(gomock.Any(), "awa@example.com", "password123").
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "awa@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns profile with loyalty standing", func() {
		standing := loyalty.StandingForPoints(540)
		s.mockAuth.EXPECT().GetProfile(gomock.Any(), s.userID).
			Return(s.profileRM(), &standing, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("awa@example.com", response.Email)
		s.Equal("SILVER", response.Loyalty.Tier)
		s.Equal(460, response.Loyalty.PointsToNext)
	})

	s.Run("error: 401 without authenticated user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "not authenticated")
	})

	s.Run("error: 404 when the account disappeared", func() {
		s.mockAuth.EXPECT().GetProfile(gomock.Any(), s.userID).
			Return(nil, nil, usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
