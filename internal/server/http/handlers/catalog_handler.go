package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshdairy/freshdairy/internal/server/http/dto"
)

// CatalogHandler serves the read-only product listing.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products. Only available products are returned.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Unit:        p.Unit,
			ImageURL:    p.ImageURL,
		})
	}

	c.JSON(http.StatusOK, response)
}
