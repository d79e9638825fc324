// cmd/storefront/recommend.go
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show recommended products",
	RunE:  runRecommend,
}

var dealsCmd = &cobra.Command{
	Use:   "deals",
	Short: "Show deals near your location",
	RunE:  runDeals,
}

func runRecommend(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.session.Init(cmd.Context()); err != nil {
		return err
	}

	products, err := a.recs.Recommendations(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load recommendations: %w", err)
	}

	if len(products) == 0 {
		fmt.Println("No recommendations right now.")
		return nil
	}

	fmt.Println("Recommended for you:")
	for _, p := range products {
		printProduct(p)
	}
	return nil
}

func runDeals(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.session.Init(cmd.Context()); err != nil {
		return err
	}

	user, err := a.session.User()
	if err != nil {
		return errors.New("sign in to see deals near you")
	}
	if user.Location == nil {
		return errors.New("your account has no location, register with --lat and --lon")
	}

	deals, err := a.recs.LocationDeals(cmd.Context(), *user.Location)
	if err != nil {
		return fmt.Errorf("failed to load deals: %w", err)
	}

	if len(deals) == 0 {
		fmt.Println("No deals near you right now.")
		return nil
	}

	for _, d := range deals {
		fmt.Printf("%-34s %9s  %d%% off (save %s)\n",
			d.Product.Name, formatCents(d.Product.Price), d.Discount, formatCents(d.SavingsAmount))
		fmt.Printf("  %s, %.1f km away, %s. %s\n",
			d.Warehouse.Location, d.Warehouse.DistanceKm, d.Warehouse.EstimatedDelivery, d.DealReason)
	}
	return nil
}
