// internal/infrastructure/api/client_test.go
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/catalog"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.APIConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, testLogger())
}

func TestBearerTokenInjected(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	client.SetTokenSource(func() string { return "tok-1" })

	require.NoError(t, client.do(context.Background(), http.MethodGet, "/ping", nil, nil))
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	client.SetTokenSource(func() string { return "" })

	require.NoError(t, client.do(context.Background(), http.MethodGet, "/ping", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedRunsHookAndWrapsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	hookCalled := false
	client.SetUnauthorizedHook(func() { hookCalled = true })

	err := client.do(context.Background(), http.MethodGet, "/orders", nil, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, hookCalled)
}

func TestErrorResponseCarriesMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": "user already exists"}`))
	})

	err := client.do(context.Background(), http.MethodPost, "/auth/register", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "user already exists", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "409")
}

func TestAuthClientLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "demo@stylehub.test", body["email"])

		w.Write([]byte(`{"data": {"user": {"id": "u-1", "email": "demo@stylehub.test", "name": "Demo Shopper"}, "access_token": "tok-1"}}`))
	})

	user, token, err := NewAuthClient(client).Login(context.Background(), "demo@stylehub.test", "shopper123")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "tok-1", token)
}

func TestProductsClientList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "shirt", body["query"])

		w.Write([]byte(`{"data": {"products": [{"id": "p-001", "name": "Classic Cotton T-Shirt", "price": 2999}]}}`))
	})

	products, err := NewProductsClient(client).List(context.Background(), "shirt")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(2999), products[0].Price)
}

func TestProductsClientListFiltered(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/filter", r.URL.Path)

		var payload catalog.QueryPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []string{"men"}, payload.Categories)
		assert.Equal(t, [2]int64{1000, 20000}, payload.PriceRange)

		w.Write([]byte(`{"data": {"products": []}}`))
	})

	payload := catalog.QueryPayload{Categories: []string{"men"}, PriceRange: [2]int64{1000, 20000}}
	products, err := NewProductsClient(client).ListFiltered(context.Background(), payload)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestOrdersClient(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders":
			w.Write([]byte(`{"data": {"orders": [{"id": "o-1", "order_number": "STH-240108-001", "status": "delivered", "total": 12498}]}}`))
		case "/orders/o-1":
			w.Write([]byte(`{"data": {"order": {"id": "o-1", "order_number": "STH-240108-001", "status": "delivered", "total": 12498}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "Order not found"}`))
		}
	})
	orders := NewOrdersClient(client)
	ctx := context.Background()

	list, err := orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "STH-240108-001", list[0].OrderNumber)

	got, err := orders.Get(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, int64(12498), got.Total)

	_, err = orders.Get(ctx, "o-404")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestEventsClientSwallowsFailures(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	events := NewEventsClient(client, func() string { return "u-1" }, testLogger())

	// Record returns nothing; a failing backend must not panic or block.
	events.Record(context.Background(), "p-001", "men", "add_to_cart")
}

func TestEventsClientSendsUser(t *testing.T) {
	var body map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"message": "Event recorded"}`))
	})

	events := NewEventsClient(client, func() string { return "u-1" }, testLogger())
	events.Record(context.Background(), "p-001", "men", "add_to_cart")

	assert.Equal(t, "p-001", body["product_id"])
	assert.Equal(t, "add_to_cart", body["event_type"])
	assert.Equal(t, "u-1", body["user_id"])
}
