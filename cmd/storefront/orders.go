// cmd/storefront/orders.go
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
)

var ordersCmd = &cobra.Command{
	Use:   "orders [order-id]",
	Short: "Show your order history",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOrders,
}

func runOrders(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.session.Init(cmd.Context()); err != nil {
		return err
	}
	if !a.session.Authenticated() {
		return errors.New("sign in to view your orders")
	}

	if len(args) == 1 {
		return showOrder(cmd, a, args[0])
	}
	return listOrders(cmd, a)
}

func listOrders(cmd *cobra.Command, a *app) error {
	orders, err := a.orders.List(cmd.Context())
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return errors.New("your session has expired, sign in again")
		}
		return err
	}

	if len(orders) == 0 {
		fmt.Println("You have no orders yet.")
		return nil
	}

	for _, o := range orders {
		fmt.Printf("%-12s %-18s %-11s %9s  %s\n",
			o.ID, o.OrderNumber, o.Status, formatCents(o.Total),
			o.OrderDate.Format("2006-01-02"))
	}
	return nil
}

func showOrder(cmd *cobra.Command, a *app, id string) error {
	o, err := a.orders.Get(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return errors.New("your session has expired, sign in again")
		}
		return err
	}

	fmt.Printf("Order %s (%s)\n", o.OrderNumber, o.Status)
	fmt.Printf("Placed %s\n", o.OrderDate.Format("January 2, 2006"))
	switch {
	case o.Status == order.StatusDelivered && o.DeliveryDate != nil:
		fmt.Printf("Delivered %s\n", o.DeliveryDate.Format("January 2, 2006"))
	case o.EstimatedDelivery != nil:
		fmt.Printf("Estimated delivery %s\n", o.EstimatedDelivery.Format("January 2, 2006"))
	}

	fmt.Println()
	for _, item := range o.Items {
		variant := ""
		if item.Size != "" || item.Color != "" {
			variant = fmt.Sprintf(" (%s %s)", item.Size, item.Color)
		}
		fmt.Printf("  %-34s%s  x%d  %s\n", item.Name, variant, item.Quantity,
			formatCents(item.Price*int64(item.Quantity)))
	}

	fmt.Printf("\nTotal: %s\n", formatCents(o.Total))
	fmt.Printf("Ship to: %s, %s, %s, %s %s\n",
		o.ShippingAddress.Name, o.ShippingAddress.Address,
		o.ShippingAddress.City, o.ShippingAddress.State, o.ShippingAddress.ZipCode)

	if o.Tracking != nil {
		fmt.Printf("Tracking: %s %s (%s)\n",
			o.Tracking.Carrier, o.Tracking.TrackingNumber, o.Tracking.Status)
	}
	return nil
}
