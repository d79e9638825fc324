// internal/domain/order/entity.go
package order

import "time"

// Status represents the order status
type Status string

const (
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Order is server-sourced and read-only on the client. Amounts are in cents.
type Order struct {
	ID                string     `json:"id"`
	OrderNumber       string     `json:"order_number"`
	Status            Status     `json:"status"`
	OrderDate         time.Time  `json:"order_date"`
	DeliveryDate      *time.Time `json:"delivery_date,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	Total             int64      `json:"total"`
	Items             []Item     `json:"items"`
	ShippingAddress   Address    `json:"shipping_address"`
	Tracking          *Tracking  `json:"tracking,omitempty"`
}

// Item is one purchased line on an order.
type Item struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Image     string `json:"image,omitempty"`
	Category  string `json:"category,omitempty"`
}

// Address is the order's shipping destination.
type Address struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// Tracking carries optional shipment tracking details.
type Tracking struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
}

// IsValidStatus reports whether s is a known order status.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
