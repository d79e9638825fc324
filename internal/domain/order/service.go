// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
)

// API is the orders collaborator contract.
type API interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
}

// Service exposes the read-only order history to the client. Orders are
// created by the backend and never mutated here.
type Service struct {
	api API
}

// NewService creates a new order service
func NewService(api API) *Service {
	return &Service{api: api}
}

// List returns the user's orders.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	orders, err := s.api.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// Get returns a single order by id.
func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	if id == "" {
		return Order{}, fmt.Errorf("order id is required")
	}

	o, err := s.api.Get(ctx, id)
	if err != nil {
		return Order{}, fmt.Errorf("failed to fetch order %s: %w", id, err)
	}
	return o, nil
}
