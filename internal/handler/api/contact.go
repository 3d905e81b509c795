package api

import (
	"errors"
	"net/http"

	reqdto "github.com/Harishsingh-01/roomeaseserver/internal/handler/dto/request"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/commands"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactCommands commands.ContactCommands
}

func NewContactHandler(contactCommands commands.ContactCommands) *ContactHandler {
	return &ContactHandler{contactCommands: contactCommands}
}

// @Summary Submit contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact message"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /contact/submit [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	_, err := h.contactCommands.SubmitContact(c.Request.Context(), shared.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, commands.ErrInvalidContactMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact message"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message received"})
}
