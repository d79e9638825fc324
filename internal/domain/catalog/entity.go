// internal/domain/catalog/entity.go
package catalog

// Product represents a catalog product as served by the backend. The client
// never mutates products; prices are in cents.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	InStock       bool     `json:"in_stock"`
	IsNew         bool     `json:"is_new,omitempty"`
	Description   string   `json:"description,omitempty"`
	Features      []string `json:"features,omitempty"`
}

// Deal represents a location-based deal on a product
type Deal struct {
	Product       Product   `json:"product"`
	Discount      int       `json:"discount"`
	SavingsAmount int64     `json:"savings_amount"`
	DealReason    string    `json:"deal_reason"`
	Warehouse     Warehouse `json:"warehouse"`
}

// Warehouse describes the fulfillment location backing a deal
type Warehouse struct {
	Location          string  `json:"location"`
	DistanceKm        float64 `json:"distance_km"`
	EstimatedDelivery string  `json:"estimated_delivery"`
}

// QueryPayload is the filter request body sent to the product query
// collaborator. Zero-length category/brand slices mean "no restriction".
type QueryPayload struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	PriceRange [2]int64 `json:"price_range"`
	Rating     float64  `json:"rating"`
}
