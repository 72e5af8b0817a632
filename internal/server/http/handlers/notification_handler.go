package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/server/http/dto"
	"github.com/freshdairy/freshdairy/internal/usecase"
)

// NotificationHandler manages the per-customer notification feed endpoints.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/notifications/:email.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.facade.Notifications(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, toNotificationResponse(n))
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/notifications.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}

	notification, err := h.facade.CreateNotification(c.Request.Context(), usecase.CreateNotificationInput{
		CustomerEmail: req.CustomerEmail,
		Title:         req.Title,
		Message:       req.Message,
		Type:          model.NotificationType(req.Type),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateNotificationResponse{Success: true, ID: notification.ID})
}

// Acknowledge handles POST /api/notifications/:id/read.
func (h *NotificationHandler) Acknowledge(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid notification id"})
		return
	}

	if err := h.facade.AcknowledgeNotification(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func toNotificationResponse(n model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:            n.ID,
		CustomerEmail: n.CustomerEmail,
		Title:         n.Title,
		Message:       n.Message,
		Type:          string(n.Type),
		IsRead:        n.IsRead,
		CreatedAt:     n.CreatedAt,
	}
}
