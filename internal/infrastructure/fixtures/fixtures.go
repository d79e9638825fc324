// internal/infrastructure/fixtures/fixtures.go
package fixtures

import (
	"time"

	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/order"
)

// Products returns the demo catalog served by the mock API. Prices in cents.
func Products() []catalog.Product {
	return []catalog.Product{
		{ID: "p-001", Name: "Classic White T-Shirt", Price: 2999, Image: "/images/p-001.jpg", Category: "men", Brand: "stylehub", Rating: 4.5, Reviews: 128, InStock: true, IsNew: true, Description: "Soft cotton crew neck tee", Features: []string{"100% cotton", "Machine washable"}},
		{ID: "p-002", Name: "Slim Fit Jeans", Price: 5999, Image: "/images/p-002.jpg", Category: "men", Brand: "premium", Rating: 4.2, Reviews: 94, InStock: true, Description: "Stretch denim, slim cut"},
		{ID: "p-003", Name: "Summer Floral Dress", Price: 7999, Image: "/images/p-003.jpg", Category: "women", Brand: "casual", Rating: 4.7, Reviews: 203, InStock: true, IsNew: true, Description: "Lightweight floral print dress"},
		{ID: "p-004", Name: "Casual Hoodie", Price: 4999, OriginalPrice: 5999, Image: "/images/p-004.jpg", Category: "men", Brand: "casual", Rating: 4.1, Reviews: 67, InStock: true, Description: "Fleece-lined pullover hoodie"},
		{ID: "p-005", Name: "Denim Jacket", Price: 8999, Image: "/images/p-005.jpg", Category: "men", Brand: "vintage", Rating: 4.4, Reviews: 52, InStock: true, IsNew: true, Description: "Washed denim trucker jacket"},
		{ID: "p-006", Name: "Pleated Skirt", Price: 4599, Image: "/images/p-006.jpg", Category: "women", Brand: "formal", Rating: 3.9, Reviews: 31, InStock: true, Description: "Knee-length pleated skirt"},
		{ID: "p-007", Name: "Knit Sweater", Price: 6599, Image: "/images/p-007.jpg", Category: "women", Brand: "premium", Rating: 4.6, Reviews: 88, InStock: true, IsNew: true, Description: "Chunky knit crew sweater"},
		{ID: "p-008", Name: "Cargo Pants", Price: 5599, Image: "/images/p-008.jpg", Category: "men", Brand: "casual", Rating: 3.8, Reviews: 45, InStock: true, Description: "Relaxed fit cargo pants"},
		{ID: "p-009", Name: "Leather Boots", Price: 12999, OriginalPrice: 14999, Image: "/images/p-009.jpg", Category: "shoes", Brand: "premium", Rating: 4.8, Reviews: 156, InStock: true, IsNew: true, Description: "Full-grain leather boots"},
		{ID: "p-010", Name: "Silk Blouse", Price: 8999, Image: "/images/p-010.jpg", Category: "women", Brand: "formal", Rating: 4.3, Reviews: 73, InStock: true, Description: "Long-sleeve silk blouse"},
		{ID: "p-011", Name: "Athletic Shorts", Price: 3499, OriginalPrice: 4499, Image: "/images/p-011.jpg", Category: "men", Brand: "athletic", Rating: 4.0, Reviews: 112, InStock: true, IsNew: true, Description: "Quick-dry training shorts"},
		{ID: "p-012", Name: "Maxi Dress", Price: 9599, Image: "/images/p-012.jpg", Category: "women", Brand: "casual", Rating: 4.5, Reviews: 61, InStock: true, Description: "Flowing ankle-length dress"},
		{ID: "p-013", Name: "Premium Cotton Polo", Price: 4599, OriginalPrice: 5999, Image: "/images/p-013.jpg", Category: "men", Brand: "stylehub", Rating: 4.2, Reviews: 39, InStock: true, Description: "Pique knit polo shirt"},
		{ID: "p-014", Name: "Lightweight Cardigan", Price: 7999, Image: "/images/p-014.jpg", Category: "women", Brand: "premium", Rating: 4.4, Reviews: 27, InStock: true, Description: "Open-front knit cardigan"},
		{ID: "p-015", Name: "Sneakers", Price: 6999, OriginalPrice: 8999, Image: "/images/p-015.jpg", Category: "shoes", Brand: "athletic", Rating: 4.6, Reviews: 214, InStock: true, Description: "Low-top everyday sneakers"},
		{ID: "p-016", Name: "Watch", Price: 14999, OriginalPrice: 19999, Image: "/images/p-016.jpg", Category: "accessories", Brand: "premium", Rating: 4.7, Reviews: 98, InStock: true, Description: "Stainless steel analog watch"},
		{ID: "p-017", Name: "Leather Belt", Price: 2499, Image: "/images/p-017.jpg", Category: "accessories", Brand: "vintage", Rating: 4.1, Reviews: 44, InStock: true, Description: "Classic leather belt"},
		{ID: "p-018", Name: "Vintage Denim Shirt", Price: 5499, Image: "/images/p-018.jpg", Category: "men", Brand: "vintage", Rating: 4.3, Reviews: 36, InStock: true, IsNew: true, Description: "Stonewashed denim shirt"},
	}
}

// Orders returns the demo order history.
func Orders() []order.Order {
	placed := time.Date(2024, 1, 8, 10, 30, 0, 0, time.UTC)
	delivered := time.Date(2024, 1, 12, 14, 20, 0, 0, time.UTC)
	shippedDate := time.Date(2024, 1, 15, 16, 45, 0, 0, time.UTC)
	shippedETA := time.Date(2024, 1, 20, 18, 0, 0, 0, time.UTC)
	processingDate := time.Date(2024, 1, 22, 9, 15, 0, 0, time.UTC)
	processingETA := time.Date(2024, 1, 28, 18, 0, 0, 0, time.UTC)

	address := order.Address{
		Name:    "John Doe",
		Address: "123 Main St",
		City:    "San Francisco",
		State:   "CA",
		ZipCode: "94102",
		Country: "US",
	}

	return []order.Order{
		{
			ID:           "ORD-2024-001",
			OrderNumber:  "STH-240108-001",
			Status:       order.StatusDelivered,
			OrderDate:    placed,
			DeliveryDate: &delivered,
			Total:        15997,
			Items: []order.Item{
				{ProductID: "p-001", Name: "Classic White T-Shirt", Price: 2999, Quantity: 2, Size: "M", Color: "White", Category: "men"},
				{ProductID: "p-003", Name: "Summer Floral Dress", Price: 7999, Quantity: 1, Size: "L", Color: "Floral Print", Category: "women"},
			},
			ShippingAddress: address,
			Tracking: &order.Tracking{
				Carrier:        "FedEx",
				TrackingNumber: "1234567890123456",
				Status:         "delivered",
			},
		},
		{
			ID:                "ORD-2024-002",
			OrderNumber:       "STH-240115-002",
			Status:            order.StatusShipped,
			OrderDate:         shippedDate,
			EstimatedDelivery: &shippedETA,
			Total:             10998,
			Items: []order.Item{
				{ProductID: "p-002", Name: "Slim Fit Jeans", Price: 5999, Quantity: 1, Size: "32", Color: "Blue", Category: "men"},
				{ProductID: "p-004", Name: "Casual Hoodie", Price: 4999, Quantity: 1, Size: "L", Color: "Gray", Category: "men"},
			},
			ShippingAddress: address,
			Tracking: &order.Tracking{
				Carrier:        "UPS",
				TrackingNumber: "1Z999AA1234567890",
				Status:         "in_transit",
			},
		},
		{
			ID:                "ORD-2024-003",
			OrderNumber:       "STH-240122-003",
			Status:            order.StatusProcessing,
			OrderDate:         processingDate,
			EstimatedDelivery: &processingETA,
			Total:             8999,
			Items: []order.Item{
				{ProductID: "p-005", Name: "Denim Jacket", Price: 8999, Quantity: 1, Size: "M", Color: "Blue", Category: "men"},
			},
			ShippingAddress: address,
		},
	}
}

// Recommendations returns the demo recommendation set.
func Recommendations() []catalog.Product {
	byID := make(map[string]catalog.Product)
	for _, p := range Products() {
		byID[p.ID] = p
	}

	picks := []string{"p-013", "p-014", "p-018", "p-011", "p-007"}
	out := make([]catalog.Product, 0, len(picks))
	for _, id := range picks {
		out = append(out, byID[id])
	}
	return out
}

// Deals returns the demo location-based deals.
func Deals() []catalog.Deal {
	byID := make(map[string]catalog.Product)
	for _, p := range Products() {
		byID[p.ID] = p
	}

	return []catalog.Deal{
		{
			Product: byID["p-004"], Discount: 20, SavingsAmount: 1000,
			DealReason: "Local warehouse clearance",
			Warehouse:  catalog.Warehouse{Location: "San Francisco Warehouse", DistanceKm: 2.5, EstimatedDelivery: "Same day delivery"},
		},
		{
			Product: byID["p-009"], Discount: 23, SavingsAmount: 3000,
			DealReason: "Overstock from nearby facility",
			Warehouse:  catalog.Warehouse{Location: "Oakland Distribution Center", DistanceKm: 8.2, EstimatedDelivery: "Next day delivery"},
		},
		{
			Product: byID["p-015"], Discount: 22, SavingsAmount: 2000,
			DealReason: "End of season clearance",
			Warehouse:  catalog.Warehouse{Location: "San Jose Fulfillment", DistanceKm: 12.1, EstimatedDelivery: "1-2 day delivery"},
		},
		{
			Product: byID["p-016"], Discount: 25, SavingsAmount: 5000,
			DealReason: "Local exclusive offer",
			Warehouse:  catalog.Warehouse{Location: "San Francisco Warehouse", DistanceKm: 2.5, EstimatedDelivery: "Same day delivery"},
		},
	}
}
