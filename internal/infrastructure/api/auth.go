// internal/infrastructure/api/auth.go
package api

import (
	"context"
	"net/http"

	"github.com/your-org/storefront-client/internal/domain/session"
)

// AuthClient implements the authentication collaborator contract.
type AuthClient struct {
	client *Client
}

// NewAuthClient creates a new auth client
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

type authResponse struct {
	Data struct {
		User        session.User `json:"user"`
		AccessToken string       `json:"access_token"`
	} `json:"data"`
}

// Login authenticates with email and password, returning the user profile
// and the bearer token for the session.
func (a *AuthClient) Login(ctx context.Context, email, password string) (session.User, string, error) {
	req := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := a.client.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return session.User{}, "", err
	}
	return resp.Data.User, resp.Data.AccessToken, nil
}

// Register creates an account and returns the resulting session.
func (a *AuthClient) Register(ctx context.Context, req session.RegisterRequest) (session.User, string, error) {
	var resp authResponse
	if err := a.client.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return session.User{}, "", err
	}
	return resp.Data.User, resp.Data.AccessToken, nil
}

// Logout ends the session on the backend.
func (a *AuthClient) Logout(ctx context.Context) error {
	return a.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// CheckSessionStatus validates the current token and returns its user, or an
// unauthorized error.
func (a *AuthClient) CheckSessionStatus(ctx context.Context) (session.User, error) {
	var resp authResponse
	if err := a.client.do(ctx, http.MethodGet, "/auth/session", nil, &resp); err != nil {
		return session.User{}, err
	}
	return resp.Data.User, nil
}
