// internal/interfaces/http/handlers/auth_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-client/internal/pkg/auth"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront-mockapi"},
		JWT: config.JWTConfig{
			Secret:            "test-secret-key-for-tests-only",
			AccessTokenExpiry: time.Hour,
		},
	}
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	users, err := NewUserStore(auth.NewPasswordManager(auth.DefaultBcryptCost))
	require.NoError(t, err)

	handler := NewAuthHandler(users, cfg)
	router := gin.New()
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/register", handler.Register)

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.GET("/auth/session", handler.Session)
	return router
}

type authData struct {
	Data struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	} `json:"data"`
}

func TestLoginSeededDemoUser(t *testing.T) {
	router := newAuthRouter(t)

	w := postJSON(t, router, "/auth/login", map[string]string{
		"email":    "demo@stylehub.test",
		"password": "shopper123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp authData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Demo Shopper", resp.Data.User.Name)
	assert.NotEmpty(t, resp.Data.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	router := newAuthRouter(t)

	w := postJSON(t, router, "/auth/login", map[string]string{
		"email":    "demo@stylehub.test",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterThenSession(t *testing.T) {
	router := newAuthRouter(t)

	w := postJSON(t, router, "/auth/register", map[string]interface{}{
		"name":      "New Shopper",
		"email":     "new@stylehub.test",
		"password":  "shopper123",
		"latitude":  40.7128,
		"longitude": -74.006,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp authData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.AccessToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var sess authData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.Equal(t, "new@stylehub.test", sess.Data.User.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newAuthRouter(t)

	w := postJSON(t, router, "/auth/register", map[string]interface{}{
		"name":     "Copy Cat",
		"email":    "demo@stylehub.test",
		"password": "shopper123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSessionRejectsMissingToken(t *testing.T) {
	router := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionRejectsGarbageToken(t *testing.T) {
	router := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
