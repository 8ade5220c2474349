package api

import (
	"errors"
	"net/http"

	"hotelhub/internal/domain/review"
	"hotelhub/internal/domain/user"
	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

// @Summary List reviews for a room
// @Tags reviews
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} readmodel.ReviewRM
// @Router /rooms/{id}/reviews [get]
func (h *ReviewHandler) ListByRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	list, err := h.reviewUseCase.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, list)
}

// @Summary Post a review
// @Description Review a room; referencing a finished stay makes it verified
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	var req reqdto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rv, err := h.reviewUseCase.Create(c.Request.Context(), userID, roomID, req.BookingID, req.ToInput())
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReview(rv))
}

// @Summary Edit own review
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid review ID",
		})
		return
	}

	var req reqdto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rv, err := h.reviewUseCase.Update(c.Request.Context(), userID, id, req.ToInput())
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReview(rv))
}

// @Summary Delete a review
// @Description Authors may delete their own reviews; admins may delete any
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid review ID",
		})
		return
	}

	role, _ := middleware.GetUserRole(c)
	isAdmin := role == user.RoleAdmin

	if err := h.reviewUseCase.Delete(c.Request.Context(), userID, id, isAdmin); err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Respond to a review
// @Description Attach the single hotel response to a review
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body reqdto.RespondReviewRequest true "Response"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reviews/{id}/respond [post]
func (h *ReviewHandler) Respond(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid review ID",
		})
		return
	}

	var req reqdto.RespondReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rv, err := h.reviewUseCase.Respond(c.Request.Context(), id, req.Response)
	if err != nil {
		if errors.Is(err, review.ErrAlreadyResponded) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Review already has a response",
			})
			return
		}
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReview(rv))
}

// @Summary Mark a review helpful
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 404 {object} map[string]string
// @Router /reviews/{id}/helpful [post]
func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid review ID",
		})
		return
	}

	rv, err := h.reviewUseCase.MarkHelpful(c.Request.Context(), id)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReview(rv))
}

func (h *ReviewHandler) respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Review not found",
		})
	case errors.Is(err, usecase.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, usecase.ErrBookingNotFound), errors.Is(err, usecase.ErrNotBookingOwner):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, usecase.ErrNotReviewAuthor):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to modify this review",
		})
	case errors.Is(err, usecase.ErrStayNotComplete), errors.Is(err, usecase.ErrBookingRoomMixup):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
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
