// internal/interfaces/http/handlers/orders.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/infrastructure/fixtures"
)

// OrderHandler serves the fixture order history
type OrderHandler struct {
	orders []order.Order
}

// NewOrderHandler creates a new order handler
func NewOrderHandler() *OrderHandler {
	return &OrderHandler{
		orders: fixtures.Orders(),
	}
}

// List returns the authenticated user's orders
func (h *OrderHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"orders": h.orders,
		},
	})
}

// Get returns a single order by id
func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	for _, o := range h.orders {
		if o.ID == id {
			c.JSON(http.StatusOK, gin.H{
				"data": gin.H{
					"order": o,
				},
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"error": "Order not found",
	})
}
