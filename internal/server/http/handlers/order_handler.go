package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/server/http/dto"
	"github.com/freshdairy/freshdairy/internal/usecase"
)

// OrderHandler manages order placement and listing endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/place-order and the legacy POST /api/orders. The
// two routes accept the same body; the legacy one keys the customer by
// userEmail and omits the delivery fields.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), usecase.PlaceOrderInput{
		CustomerEmail:   req.Email(),
		CustomerName:    req.CustomerName,
		Items:           toModelItems(req.Items),
		TotalAmount:     req.TotalAmount,
		DeliveryAddress: req.DeliveryAddress,
		Mobile:          req.Mobile,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PlaceOrderResponse{
		Message: "Order placed successfully!",
		OrderID: order.ID,
	})
}

// ListByCustomer handles GET /api/orders/:email.
func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	orders, err := h.facade.CustomerOrders(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

func toModelItems(items []dto.OrderItem) []model.OrderItem {
	result := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		result = append(result, model.OrderItem{Name: item.Name, Price: item.Price, Quantity: item.Quantity})
	}
	return result
}

func toDTOItems(items []model.OrderItem) []dto.OrderItem {
	result := make([]dto.OrderItem, 0, len(items))
	for _, item := range items {
		result = append(result, dto.OrderItem{Name: item.Name, Price: item.Price, Quantity: item.Quantity})
	}
	return result
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              order.ID,
		CustomerEmail:   order.CustomerEmail,
		CustomerName:    order.CustomerName,
		Items:           toDTOItems(order.Items),
		TotalAmount:     order.TotalAmount,
		DeliveryAddress: order.DeliveryAddress,
		Mobile:          order.Mobile,
		PaymentMethod:   order.PaymentMethod,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
	}
}
