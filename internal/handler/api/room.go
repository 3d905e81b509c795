package api

import (
	"net/http"

	resdto "github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/response"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomQueries   queries.RoomQueries
	reviewQueries queries.ReviewQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries, reviewQueries queries.ReviewQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries:   roomQueries,
		reviewQueries: reviewQueries,
	}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomListItemResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	items, err := h.roomQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomListItems(items))
}

// @Summary Featured rooms
// @Description Top rated rooms for the landing page
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomListItemResponse
// @Router /rooms/featured [get]
func (h *RoomHandler) ListFeatured(c *gin.Context) {
	items, err := h.roomQueries.ListFeatured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomListItems(items))
}

// @Summary Room statistics
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.RoomStatisticsResponse
// @Router /rooms/statistics [get]
func (h *RoomHandler) Statistics(c *gin.Context) {
	stats, err := h.roomQueries.Statistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomStatistics(stats))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID format"})
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}
