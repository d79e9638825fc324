// internal/infrastructure/api/orders.go
package api

import (
	"context"
	"net/http"

	"github.com/your-org/storefront-client/internal/domain/order"
)

// OrdersClient implements the orders collaborator contract.
type OrdersClient struct {
	client *Client
}

// NewOrdersClient creates a new orders client
func NewOrdersClient(client *Client) *OrdersClient {
	return &OrdersClient{client: client}
}

// List fetches the user's orders.
func (o *OrdersClient) List(ctx context.Context) ([]order.Order, error) {
	var resp struct {
		Data struct {
			Orders []order.Order `json:"orders"`
		} `json:"data"`
	}
	if err := o.client.do(ctx, http.MethodGet, "/orders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Orders, nil
}

// Get fetches a single order by id.
func (o *OrdersClient) Get(ctx context.Context, id string) (order.Order, error) {
	var resp struct {
		Data struct {
			Order order.Order `json:"order"`
		} `json:"data"`
	}
	if err := o.client.do(ctx, http.MethodGet, "/orders/"+id, nil, &resp); err != nil {
		return order.Order{}, err
	}
	return resp.Data.Order, nil
}
