package api

import (
	"net/http"

	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	dashboardUseCase usecase.DashboardUseCase
}

func NewAdminHandler(dashboardUseCase usecase.DashboardUseCase) *AdminHandler {
	return &AdminHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// @Summary Admin dashboard
// @Description Aggregated counters and revenue for the admin landing page
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} readmodel.AdminDashboardRM
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardUseCase.AdminDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary List users
// @Description All accounts with booking aggregates and loyalty standing
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} usecase.AdminUserEntry
// @Router /admin/users [get]
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.dashboardUseCase.AdminUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, users)
}
