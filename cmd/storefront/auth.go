// cmd/storefront/auth.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/domain/session"
)

var (
	registerName string
	registerLat  float64
	registerLon  float64
)

var loginCmd = &cobra.Command{
	Use:   "login [email] [password]",
	Short: "Sign in to your account",
	Args:  cobra.ExactArgs(2),
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register [email] [password]",
	Short: "Create an account",
	Args:  cobra.ExactArgs(2),
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runWhoami,
}

func init() {
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "full name")
	registerCmd.Flags().Float64Var(&registerLat, "lat", 0, "latitude for location deals")
	registerCmd.Flags().Float64Var(&registerLon, "lon", 0, "longitude for location deals")
	registerCmd.MarkFlagRequired("name")
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	user, err := a.session.Login(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("Signed in as %s <%s>.\n", user.Name, user.Email)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	req := session.RegisterRequest{
		Name:     registerName,
		Email:    args[0],
		Password: args[1],
	}
	if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
		req.Latitude = &registerLat
		req.Longitude = &registerLon
	}

	user, err := a.session.Register(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("Welcome, %s. You are signed in.\n", user.Name)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.session.Init(cmd.Context()); err != nil {
		return err
	}
	if !a.session.Authenticated() {
		fmt.Println("You are not signed in.")
		return nil
	}

	if err := a.session.Logout(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.session.Init(cmd.Context()); err != nil {
		return err
	}

	user, err := a.session.User()
	if err != nil {
		fmt.Println("You are not signed in.")
		return nil
	}

	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	if user.Location != nil && user.Location.Address != "" {
		fmt.Printf("Location: %s\n", user.Location.Address)
	}
	return nil
}
