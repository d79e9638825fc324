// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/cart"
)

// ErrEmptyCart is returned when placing an order with no cart lines.
var ErrEmptyCart = fmt.Errorf("cart is empty")

// Summary holds the derived checkout totals, in cents.
type Summary struct {
	Subtotal             int64 `json:"subtotal"`
	Shipping             int64 `json:"shipping"`
	Tax                  int64 `json:"tax"`
	Total                int64 `json:"total"`
	FreeShipping         bool  `json:"free_shipping"`
	AmountToFreeShipping int64 `json:"amount_to_free_shipping"`
}

// Confirmation is the result of a completed checkout.
type Confirmation struct {
	OrderNumber string    `json:"order_number"`
	Total       int64     `json:"total"`
	PlacedAt    time.Time `json:"placed_at"`
}

// Service derives checkout totals from the cart store and completes the
// checkout flow.
type Service struct {
	cart *cart.Store
	cfg  config.CheckoutConfig
	log  *logrus.Logger
}

// NewService creates a new checkout service
func NewService(cartStore *cart.Store, cfg config.CheckoutConfig, log *logrus.Logger) *Service {
	return &Service{
		cart: cartStore,
		cfg:  cfg,
		log:  log,
	}
}

// Summary computes the current totals: shipping is free at or above the
// configured threshold and a flat fee otherwise, tax is a fixed percentage of
// the subtotal.
func (s *Service) Summary() Summary {
	return s.summarize(s.cart.Subtotal())
}

func (s *Service) summarize(subtotal int64) Summary {
	sum := Summary{Subtotal: subtotal}

	if subtotal >= s.cfg.FreeShippingThreshold {
		sum.FreeShipping = true
	} else {
		sum.Shipping = s.cfg.ShippingFee
		sum.AmountToFreeShipping = s.cfg.FreeShippingThreshold - subtotal
	}

	sum.Tax = int64(math.Round(float64(subtotal) * s.cfg.TaxRate))
	sum.Total = sum.Subtotal + sum.Shipping + sum.Tax

	return sum
}

// PlaceOrder completes the checkout: it rejects an empty cart, produces an
// order confirmation and clears the cart.
func (s *Service) PlaceOrder(ctx context.Context) (*Confirmation, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	sum := s.Summary()
	conf := &Confirmation{
		OrderNumber: fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		Total:       sum.Total,
		PlacedAt:    time.Now().UTC(),
	}

	if err := s.cart.Clear(); err != nil {
		return nil, fmt.Errorf("order placed but cart not cleared: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"order_number": conf.OrderNumber,
		"total":        conf.Total,
		"items":        len(lines),
	}).Info("Order placed")

	return conf, nil
}
