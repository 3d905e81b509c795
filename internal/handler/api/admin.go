package api

import (
	"errors"
	"net/http"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/room"
	reqdto "github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/request"
	resdto "github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/response"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/queries"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	roomCommands   commands.RoomCommands
	userCommands   commands.UserCommands
	bookingQueries queries.BookingQueries
	userQueries    queries.UserQueries
	contactQueries queries.ContactQueries
}

func NewAdminHandler(
	roomCommands commands.RoomCommands,
	userCommands commands.UserCommands,
	bookingQueries queries.BookingQueries,
	userQueries queries.UserQueries,
	contactQueries queries.ContactQueries,
) *AdminHandler {
	return &AdminHandler{
		roomCommands:   roomCommands,
		userCommands:   userCommands,
		bookingQueries: bookingQueries,
		userQueries:    userQueries,
		contactQueries: contactQueries,
	}
}

// @Summary Add room
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room definition"
// @Success 201 {object} resdto.CreateRoomResponse
// @Failure 400 {object} map[string]string
// @Router /admin/addroom [post]
func (h *AdminHandler) AddRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	roomID, err := h.roomCommands.CreateRoom(c.Request.Context(), commands.CreateRoomRequest{
		Name:             req.Name,
		Type:             req.Type,
		Price:            req.Price,
		Amenities:        req.Amenities,
		Description:      req.Description,
		MainImage:        req.MainImage,
		AdditionalImages: req.AdditionalImages,
	})
	if err != nil {
		if isRoomValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRoomResponse{RoomID: roomID})
}

// @Summary Update room
// @Description Patch room fields; forcing available=true discards lingering bookings
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room patch"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/rooms/{id} [put]
func (h *AdminHandler) UpdateRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID format"})
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.roomCommands.UpdateRoom(c.Request.Context(), roomID, req.ToPatch()); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, shared.ErrMaxRetriesExceeded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporary conflict, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room updated"})
}

// @Summary Delete room
// @Description Remove a room and cascade its bookings and reviews
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/rooms/{id} [delete]
func (h *AdminHandler) DeleteRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID format"})
		return
	}

	if err := h.roomCommands.DeleteRoom(c.Request.Context(), roomID); err != nil {
		if errors.Is(err, commands.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}

// @Summary Booked rooms
// @Description All currently booked stays across rooms
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /admin/booked-rooms [get]
func (h *AdminHandler) BookedRooms(c *gin.Context) {
	views, err := h.bookingQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Router /admin/usersdata [get]
func (h *AdminHandler) UsersData(c *gin.Context) {
	views, err := h.userQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Delete user
// @Description Remove an account, its bookings, and release freed rooms
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	if err := h.userCommands.DeleteUser(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, shared.ErrMaxRetriesExceeded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporary conflict, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// @Summary Contact messages
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ContactResponse
// @Router /admin/contacts [get]
func (h *AdminHandler) Contacts(c *gin.Context) {
	views, err := h.contactQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromContactViews(views))
}

func isRoomValidationError(err error) bool {
	return errors.Is(err, room.ErrEmptyName) ||
		errors.Is(err, room.ErrEmptyType) ||
		errors.Is(err, room.ErrInvalidPrice) ||
		errors.Is(err, room.ErrMainImageRequired) ||
		errors.Is(err, room.ErrTooManyExtraImages)
}
