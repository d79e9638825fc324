// internal/interfaces/http/handlers/products.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/infrastructure/fixtures"
)

// ProductHandler serves the fixture catalog
type ProductHandler struct {
	products []catalog.Product
}

// NewProductHandler creates a new product handler
func NewProductHandler() *ProductHandler {
	return &ProductHandler{
		products: fixtures.Products(),
	}
}

// Search returns products matching an optional text query
func (h *ProductHandler) Search(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	results := make([]catalog.Product, 0, len(h.products))
	for _, p := range h.products {
		if query == "" || matchesQuery(p, query) {
			results = append(results, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"products": results,
		},
	})
}

// Filter returns products matching the structured filter payload
func (h *ProductHandler) Filter(c *gin.Context) {
	var req catalog.QueryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	results := make([]catalog.Product, 0, len(h.products))
	for _, p := range h.products {
		if matchesPayload(p, req) {
			results = append(results, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"products": results,
		},
	})
}

func matchesQuery(p catalog.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query) ||
		strings.Contains(strings.ToLower(p.Brand), query)
}

func matchesPayload(p catalog.Product, q catalog.QueryPayload) bool {
	if len(q.Categories) > 0 && !containsFold(q.Categories, p.Category) {
		return false
	}
	if len(q.Brands) > 0 && !containsFold(q.Brands, p.Brand) {
		return false
	}
	// A zero-value range means the caller sent no price restriction
	if q.PriceRange[1] > 0 {
		if p.Price < q.PriceRange[0] || p.Price > q.PriceRange[1] {
			return false
		}
	}
	if q.Rating > 0 && p.Rating < q.Rating {
		return false
	}
	return true
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
