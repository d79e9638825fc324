// cmd/storefront/cart.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/catalog"
)

var (
	cartAddSize  string
	cartAddColor string
	cartAddQty   int
	cartRmSize   string
	cartRmColor  string
	cartSetSize  string
	cartSetColor string
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart contents",
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add [product-id]",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartRmCmd = &cobra.Command{
	Use:   "rm [product-id]",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRm,
}

var cartSetCmd = &cobra.Command{
	Use:   "set [product-id] [quantity]",
	Short: "Set the quantity of a cart line",
	Args:  cobra.ExactArgs(2),
	RunE:  runCartSet,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE:  runCartClear,
}

func init() {
	cartAddCmd.Flags().StringVar(&cartAddSize, "size", "", "selected size")
	cartAddCmd.Flags().StringVar(&cartAddColor, "color", "", "selected color")
	cartAddCmd.Flags().IntVarP(&cartAddQty, "qty", "q", 1, "quantity to add")

	cartRmCmd.Flags().StringVar(&cartRmSize, "size", "", "selected size")
	cartRmCmd.Flags().StringVar(&cartRmColor, "color", "", "selected color")

	cartSetCmd.Flags().StringVar(&cartSetSize, "size", "", "selected size")
	cartSetCmd.Flags().StringVar(&cartSetColor, "color", "", "selected color")

	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRmCmd)
	cartCmd.AddCommand(cartSetCmd)
	cartCmd.AddCommand(cartClearCmd)
}

func runCartShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}

	for _, l := range lines {
		variant := ""
		if l.SelectedSize != "" || l.SelectedColor != "" {
			variant = fmt.Sprintf(" (%s %s)", l.SelectedSize, l.SelectedColor)
		}
		fmt.Printf("%-8s %-34s%s  x%d  %s\n",
			l.Product.ID, l.Product.Name, variant, l.Quantity, formatCents(l.LineTotal()))
	}

	fmt.Printf("\n%d items, subtotal %s\n", a.cart.TotalItems(), formatCents(a.cart.Subtotal()))
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	product, err := findProduct(cmd, a, args[0])
	if err != nil {
		return err
	}

	return a.cart.AddItem(cmd.Context(), product, cartAddSize, cartAddColor, cartAddQty)
}

func runCartRm(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	key := cart.LineKey{ProductID: args[0], Size: cartRmSize, Color: cartRmColor}
	if err := a.cart.RemoveItem(key); err != nil {
		return err
	}

	fmt.Println("Removed from cart.")
	return nil
}

func runCartSet(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	var qty int
	if _, err := fmt.Sscanf(args[1], "%d", &qty); err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}

	key := cart.LineKey{ProductID: args[0], Size: cartSetSize, Color: cartSetColor}
	if err := a.cart.UpdateQuantity(key, qty); err != nil {
		return err
	}

	fmt.Printf("%d items, subtotal %s\n", a.cart.TotalItems(), formatCents(a.cart.Subtotal()))
	return nil
}

func runCartClear(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.cart.Clear(); err != nil {
		return err
	}

	fmt.Println("Cart cleared.")
	return nil
}

// findProduct resolves a product id through the product query collaborator.
func findProduct(cmd *cobra.Command, a *app, id string) (catalog.Product, error) {
	products, err := a.products.List(cmd.Context(), "")
	if err != nil {
		return catalog.Product{}, fmt.Errorf("failed to load products: %w", err)
	}

	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, fmt.Errorf("product %q not found", id)
}
