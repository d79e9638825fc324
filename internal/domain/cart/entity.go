// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/storefront-client/internal/domain/catalog"
)

// LineKey identifies a cart line: one line exists per unique
// (product, size, color) combination.
type LineKey struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Line represents one entry in the cart: a product snapshot plus the chosen
// variant options and a positive quantity.
type Line struct {
	Product       catalog.Product `json:"product"`
	SelectedSize  string          `json:"selected_size,omitempty"`
	SelectedColor string          `json:"selected_color,omitempty"`
	Quantity      int             `json:"quantity"`
	AddedAt       time.Time       `json:"added_at"`
}

// Key returns the merge identity of the line.
func (l Line) Key() LineKey {
	return LineKey{
		ProductID: l.Product.ID,
		Size:      l.SelectedSize,
		Color:     l.SelectedColor,
	}
}

// LineTotal returns price times quantity for the line, in cents.
func (l Line) LineTotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}
