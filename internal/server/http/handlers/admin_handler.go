package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/server/http/dto"
	"github.com/freshdairy/freshdairy/internal/usecase"
)

// AdminHandler serves the admin console read models and the status write path.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Orders handles GET /api/admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	orders, err := h.facade.AdminOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.AdminOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toAdminOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /api/admin/orders/:id. Status updates address the
// order by its storage id; the display id is never accepted here.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}

	order, err := h.facade.SetOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAdminOrderResponse(*order))
}

// Customers handles GET /api/admin/customers.
func (h *AdminHandler) Customers(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.CustomerSummary, 0, len(customers))
	for _, customer := range customers {
		response = append(response, dto.CustomerSummary{
			ID:        customer.ID,
			Name:      customer.Name,
			Email:     customer.Email,
			CreatedAt: customer.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// Messages handles GET /api/admin/messages.
func (h *AdminHandler) Messages(c *gin.Context) {
	messages, err := h.facade.Messages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, dto.MessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.facade.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalOrders:    stats.Orders,
		PendingOrders:  stats.PendingOrders,
		TotalCustomers: stats.Customers,
		TotalMessages:  stats.Messages,
		TotalRevenue:   stats.Revenue,
	})
}

// Statuses handles GET /api/admin/statuses.
func (h *AdminHandler) Statuses(c *gin.Context) {
	statuses := h.facade.OrderStatuses()
	labels := make([]string, 0, len(statuses))
	for _, s := range statuses {
		labels = append(labels, string(s))
	}
	c.JSON(http.StatusOK, labels)
}

func toAdminOrderResponse(order usecase.DisplayOrder) dto.AdminOrderResponse {
	return dto.AdminOrderResponse{
		OrderResponse: toOrderResponse(order.Order),
		DisplayID:     order.DisplayID,
	}
}
