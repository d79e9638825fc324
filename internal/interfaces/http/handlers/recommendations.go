// internal/interfaces/http/handlers/recommendations.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/domain/session"
	"github.com/your-org/storefront-client/internal/infrastructure/fixtures"
)

// RecommendationHandler serves fixture recommendations and location deals
type RecommendationHandler struct{}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler() *RecommendationHandler {
	return &RecommendationHandler{}
}

// Recommendations returns the recommended product list
func (h *RecommendationHandler) Recommendations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"products": fixtures.Recommendations(),
		},
	})
}

// LocationDeals returns deals near the submitted location
func (h *RecommendationHandler) LocationDeals(c *gin.Context) {
	var req struct {
		Location session.Location `json:"location" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"deals": fixtures.Deals(),
		},
	})
}
