package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshdairy/freshdairy/internal/server/http/dto"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	facade ContactFacade
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(facade ContactFacade) *ContactHandler {
	return &ContactHandler{facade: facade}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}

	if _, err := h.facade.SubmitContact(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
