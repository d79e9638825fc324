// internal/infrastructure/api/recommendations.go
package api

import (
	"context"
	"net/http"

	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/session"
)

// RecommendationsClient implements the recommendations and location-deals
// collaborator contracts.
type RecommendationsClient struct {
	client *Client
}

// NewRecommendationsClient creates a new recommendations client
func NewRecommendationsClient(client *Client) *RecommendationsClient {
	return &RecommendationsClient{client: client}
}

// Recommendations fetches personalized product recommendations.
func (r *RecommendationsClient) Recommendations(ctx context.Context) ([]catalog.Product, error) {
	var resp productsResponse
	if err := r.client.do(ctx, http.MethodGet, "/recommendations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Products, nil
}

// LocationDeals fetches deals near the user's location.
func (r *RecommendationsClient) LocationDeals(ctx context.Context, loc session.Location) ([]catalog.Deal, error) {
	req := map[string]interface{}{"location": loc}

	var resp struct {
		Data struct {
			Deals []catalog.Deal `json:"deals"`
		} `json:"data"`
	}
	if err := r.client.do(ctx, http.MethodPost, "/deals/location", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Deals, nil
}
