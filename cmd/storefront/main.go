// cmd/storefront/main.go
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/checkout"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/session"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
	"github.com/your-org/storefront-client/internal/infrastructure/storage/file"
	redisstorage "github.com/your-org/storefront-client/internal/infrastructure/storage/redis"
	"github.com/your-org/storefront-client/internal/pkg/logger"
)

// app holds the wired application graph shared by all commands.
type app struct {
	config   *config.Config
	log      *logrus.Logger
	client   *api.Client
	products *api.ProductsClient
	recs     *api.RecommendationsClient
	events   *api.EventsClient
	session  *session.Store
	cart     *cart.Store
	checkout *checkout.Service
	orders   *order.Service
}

// stdoutNotifier surfaces cart notifications on the terminal.
type stdoutNotifier struct{}

func (stdoutNotifier) Notify(message string) {
	fmt.Println(message)
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg := logger.New(cfg)

	client := api.NewClient(cfg.API, logg)
	authClient := api.NewAuthClient(client)

	sessionStore := session.NewStore(file.NewSessionStore(cfg.Session.FilePath), authClient, logg)
	client.SetTokenSource(sessionStore.Token)
	client.SetUnauthorizedHook(sessionStore.HandleUnauthorized)

	events := api.NewEventsClient(client, func() string {
		user, err := sessionStore.User()
		if err != nil {
			return ""
		}
		return user.ID
	}, logg)

	var cartStorage cart.Storage
	switch cfg.Cart.Backend {
	case config.CartBackendRedis:
		redisClient, err := redisstorage.NewConnection(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		cartStorage = redisstorage.NewCartStore(redisClient, cfg.Cart.RedisKey, cfg.Cart.TTL)
	case config.CartBackendFile:
		cartStorage = file.NewCartStore(cfg.Cart.FilePath)
	default:
		return nil, fmt.Errorf("unknown cart backend %q", cfg.Cart.Backend)
	}

	cartStore := cart.NewStore(cartStorage, stdoutNotifier{}, events, logg)

	return &app{
		config:   cfg,
		log:      logg,
		client:   client,
		products: api.NewProductsClient(client),
		recs:     api.NewRecommendationsClient(client),
		events:   events,
		session:  sessionStore,
		cart:     cartStore,
		checkout: checkout.NewService(cartStore, cfg.Checkout, logg),
		orders:   order.NewService(api.NewOrdersClient(client)),
	}, nil
}

// formatCents renders a cent amount as dollars.
func formatCents(c int64) string {
	return fmt.Sprintf("$%.2f", float64(c)/100)
}

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "StyleHub storefront client",
	Long:          "Browse the catalog, manage a cart, and check out against the StyleHub API.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(dealsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
