package api

import (
	"errors"
	"net/http"

	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomUseCase    usecase.RoomUseCase
	bookingUseCase usecase.BookingUseCase
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase, bookingUseCase usecase.BookingUseCase) *RoomHandler {
	return &RoomHandler{
		roomUseCase:    roomUseCase,
		bookingUseCase: bookingUseCase,
	}
}

// @Summary List rooms
// @Description List rooms with their current occupancy state
// @Tags rooms
// @Produce json
// @Param include_inactive query bool false "Include deactivated rooms"
// @Success 200 {array} readmodel.RoomRM
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	rooms, err := h.roomUseCase.List(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// @Summary Get a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} readmodel.RoomRM
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	rm, err := h.roomUseCase.Get(c.Request.Context(), id)
	if err != nil {
		h.respondRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Check room availability
// @Description Check whether a room is free for a period and estimate the price
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string true "Check-in (RFC3339)"
// @Param check_out query string true "Check-out (RFC3339)"
// @Success 200 {object} usecase.AvailabilityResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid availability query",
		})
		return
	}

	result, err := h.bookingUseCase.CheckAvailability(c.Request.Context(), id, q.CheckIn, q.CheckOut)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
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

	c.JSON(http.StatusOK, result)
}

// @Summary Create a room
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RoomRequest true "Room"
// @Success 201 {object} readmodel.RoomRM
// @Failure 400 {object} map[string]string
// @Router /admin/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.roomUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, rm)
}

// @Summary Update a room
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomRequest true "Room"
// @Success 200 {object} readmodel.RoomRM
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.roomUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.respondRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Deactivate a room
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	if err := h.roomUseCase.Deactivate(c.Request.Context(), id); err != nil {
		h.respondRoomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) respondRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
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
