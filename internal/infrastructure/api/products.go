// internal/infrastructure/api/products.go
package api

import (
	"context"
	"net/http"

	"github.com/your-org/storefront-client/internal/domain/catalog"
)

// ProductsClient implements the product query collaborator contract.
type ProductsClient struct {
	client *Client
}

// NewProductsClient creates a new products client
func NewProductsClient(client *Client) *ProductsClient {
	return &ProductsClient{client: client}
}

type productsResponse struct {
	Data struct {
		Products []catalog.Product `json:"products"`
	} `json:"data"`
}

// List fetches products, optionally narrowed by free-text search.
func (p *ProductsClient) List(ctx context.Context, search string) ([]catalog.Product, error) {
	req := map[string]string{"query": search}

	var resp productsResponse
	if err := p.client.do(ctx, http.MethodPost, "/products", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Products, nil
}

// ListFiltered fetches products matching the filter payload.
func (p *ProductsClient) ListFiltered(ctx context.Context, payload catalog.QueryPayload) ([]catalog.Product, error) {
	var resp productsResponse
	if err := p.client.do(ctx, http.MethodPost, "/products/filter", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Products, nil
}
