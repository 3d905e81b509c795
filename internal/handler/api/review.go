package api

import (
	"errors"
	"net/http"

	domreview "github.com/Harishsingh-01/roomeaseserver/internal/domain/review"
	reqdto "github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/request"
	resdto "github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/response"
	"github.com/Harishsingh-01/roomeaseserver/internal/handler/middleware"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary Add review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reviews/add [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.reviewCommands.CreateReview(c.Request.Context(), commands.CreateReviewRequest{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrBookingNotEligible):
			c.JSON(http.StatusForbidden, gin.H{"error": "Booking not eligible for review"})
		case errors.Is(err, commands.ErrDuplicateReview):
			c.JSON(http.StatusConflict, gin.H{"error": "Review already exists for this booking"})
		case errors.Is(err, domreview.ErrInvalidRating),
			errors.Is(err, domreview.ErrEmptyComment),
			errors.Is(err, domreview.ErrCommentTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{ReviewID: result.ReviewID})
}

// @Summary Room reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.ReviewResponse
// @Router /reviews/room/{id} [get]
func (h *ReviewHandler) GetRoomReviews(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID format"})
		return
	}

	views, err := h.reviewQueries.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary User reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReviewResponse
// @Router /reviews/user [get]
func (h *ReviewHandler) GetUserReviews(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.reviewQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Booking review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 404 {object} map[string]string
// @Router /reviews/booking/{id} [get]
func (h *ReviewHandler) GetBookingReview(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	view, err := h.reviewQueries.GetByBookingID(c.Request.Context(), bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Edit review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Review update"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID format"})
		return
	}

	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err = h.reviewCommands.UpdateReview(c.Request.Context(), reviewID, commands.UpdateReviewRequest{
		Rating:  req.Rating,
		Comment: req.Comment,
	}, userID)
	if err != nil {
		h.respondReviewWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated"})
}

// @Summary Delete review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	role, _ := middleware.GetUserRole(c)

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID format"})
		return
	}

	if err := h.reviewCommands.DeleteReview(c.Request.Context(), reviewID, userID, role.String()); err != nil {
		h.respondReviewWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *ReviewHandler) respondReviewWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReviewNotFoundWrite):
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
	case errors.Is(err, commands.ErrReviewNotOwned):
		c.JSON(http.StatusForbidden, gin.H{"error": "Review not owned by user"})
	case errors.Is(err, domreview.ErrInvalidRating),
		errors.Is(err, domreview.ErrEmptyComment),
		errors.Is(err, domreview.ErrCommentTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
