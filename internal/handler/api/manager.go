package api

import (
	"errors"
	"net/http"

	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ManagerHandler struct {
	dashboardUseCase usecase.DashboardUseCase
}

func NewManagerHandler(dashboardUseCase usecase.DashboardUseCase) *ManagerHandler {
	return &ManagerHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// @Summary Front-desk board
// @Description Every active room with live occupancy state and remaining time
// @Tags manager
// @Security BearerAuth
// @Produce json
// @Success 200 {object} readmodel.ManagerDashboardRM
// @Router /manager/dashboard [get]
func (h *ManagerHandler) Dashboard(c *gin.Context) {
	board, err := h.dashboardUseCase.ManagerDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, board)
}

// @Summary Create an hourly booking
// @Description Walk-in flow: the guest is checked in immediately, priced from the hourly rate table
// @Tags manager
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.HourlyBookingRequest true "Hourly booking"
// @Success 201 {object} readmodel.BookingRM
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /manager/bookings/hourly [post]
func (h *ManagerHandler) CreateHourlyBooking(c *gin.Context) {
	var req reqdto.HourlyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.dashboardUseCase.CreateHourlyBooking(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, usecase.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room is occupied for the requested hours",
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
		return
	}

	c.JSON(http.StatusCreated, rm)
}
