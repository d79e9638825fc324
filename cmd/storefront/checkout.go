// cmd/storefront/checkout.go
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/domain/checkout"
)

var checkoutPlace bool

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Review the order summary and place the order",
	RunE:  runCheckout,
}

func init() {
	checkoutCmd.Flags().BoolVar(&checkoutPlace, "place", false, "place the order")
}

func runCheckout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if a.cart.TotalItems() == 0 {
		return errors.New("your cart is empty")
	}

	summary := a.checkout.Summary()
	fmt.Printf("Subtotal:  %s\n", formatCents(summary.Subtotal))
	if summary.FreeShipping {
		fmt.Println("Shipping:  FREE")
	} else {
		fmt.Printf("Shipping:  %s\n", formatCents(summary.Shipping))
		fmt.Printf("Add %s more to qualify for free shipping.\n", formatCents(summary.AmountToFreeShipping))
	}
	fmt.Printf("Tax:       %s\n", formatCents(summary.Tax))
	fmt.Printf("Total:     %s\n", formatCents(summary.Total))

	if !checkoutPlace {
		fmt.Println("\nRun again with --place to place the order.")
		return nil
	}

	confirmation, err := a.checkout.PlaceOrder(cmd.Context())
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			return errors.New("your cart is empty")
		}
		return err
	}

	fmt.Printf("\nOrder %s placed for %s at %s.\n",
		confirmation.OrderNumber,
		formatCents(confirmation.Total),
		confirmation.PlacedAt.Format("2006-01-02 15:04"))

	return nil
}
