// cmd/storefront/products.go
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/listing"
	"github.com/your-org/storefront-client/internal/pkg/pagination"
)

var (
	productsSearch     string
	productsCategories []string
	productsBrands     []string
	productsPriceMin   float64
	productsPriceMax   float64
	productsRating     float64
	productsPage       int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the product catalog",
	RunE:  runProducts,
}

func init() {
	productsCmd.Flags().StringVarP(&productsSearch, "search", "s", "", "free-text search")
	productsCmd.Flags().StringSliceVarP(&productsCategories, "category", "c", nil, "filter by category (repeatable)")
	productsCmd.Flags().StringSliceVarP(&productsBrands, "brand", "b", nil, "filter by brand (repeatable)")
	productsCmd.Flags().Float64Var(&productsPriceMin, "min-price", 0, "minimum price in dollars")
	productsCmd.Flags().Float64Var(&productsPriceMax, "max-price", 0, "maximum price in dollars")
	productsCmd.Flags().Float64VarP(&productsRating, "rating", "r", 0, "minimum rating")
	productsCmd.Flags().IntVarP(&productsPage, "page", "p", 1, "page to display")
}

func runProducts(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	filters := catalog.NewFilters(a.config.Catalog.PriceMax)
	for _, c := range productsCategories {
		filters.SetCategory(strings.ToLower(c), true)
	}
	for _, b := range productsBrands {
		filters.SetBrand(strings.ToLower(b), true)
	}
	if productsPriceMin > 0 || productsPriceMax > 0 {
		max := int64(productsPriceMax * 100)
		if max == 0 {
			max = a.config.Catalog.PriceMax
		}
		filters.SetPriceRange(int64(productsPriceMin*100), max)
	}
	if productsRating > 0 {
		filters.SetRating(productsRating)
	}

	orch := listing.NewOrchestrator(filters, a.products, nil, a.config.Catalog, a.log)
	if productsSearch != "" {
		err = orch.Search(cmd.Context(), productsSearch)
	} else {
		err = orch.Refresh(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	if productsPage > 1 && !orch.SetPage(productsPage) {
		return fmt.Errorf("page %d is out of range (1-%d)", productsPage, orch.TotalPages())
	}

	items := orch.PageItems()
	if len(items) == 0 {
		fmt.Println("No products match your criteria.")
		return nil
	}

	fmt.Printf("%d products, page %d of %d\n\n", orch.TotalMatches(), orch.CurrentPage(), orch.TotalPages())
	for _, p := range items {
		printProduct(p)
	}
	fmt.Printf("\nPages: %s\n", renderPageWindow(orch.VisiblePages(), orch.CurrentPage()))

	return nil
}

func printProduct(p catalog.Product) {
	line := fmt.Sprintf("%-8s %-34s %9s", p.ID, p.Name, formatCents(p.Price))
	if p.OriginalPrice > p.Price {
		line += fmt.Sprintf("  (was %s)", formatCents(p.OriginalPrice))
	}
	line += fmt.Sprintf("  %.1f★ (%d)", p.Rating, p.Reviews)
	if !p.InStock {
		line += "  OUT OF STOCK"
	}
	if p.IsNew {
		line += "  NEW"
	}
	fmt.Println(line)
}

// renderPageWindow formats the visible page numbers, marking the current page
// and collapsing gaps to an ellipsis.
func renderPageWindow(pages []int, current int) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		switch {
		case p == pagination.Ellipsis:
			parts = append(parts, "...")
		case p == current:
			parts = append(parts, fmt.Sprintf("[%d]", p))
		default:
			parts = append(parts, fmt.Sprintf("%d", p))
		}
	}
	return strings.Join(parts, " ")
}
