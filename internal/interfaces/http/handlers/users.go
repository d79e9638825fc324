// internal/interfaces/http/handlers/users.go
package handlers

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/your-org/storefront-client/internal/domain/session"
	"github.com/your-org/storefront-client/internal/pkg/auth"
)

// userRecord is a registered mock-API user.
type userRecord struct {
	Profile      session.User
	PasswordHash string
}

// UserStore is the in-memory account registry for the mock API.
type UserStore struct {
	mu        sync.Mutex
	byEmail   map[string]*userRecord
	passwords *auth.PasswordManager
}

// NewUserStore creates a user store seeded with a demo account.
func NewUserStore(passwords *auth.PasswordManager) (*UserStore, error) {
	s := &UserStore{
		byEmail:   make(map[string]*userRecord),
		passwords: passwords,
	}

	_, err := s.Create("Demo Shopper", "demo@stylehub.test", "shopper123", &session.Location{
		Latitude:  37.7749,
		Longitude: -122.4194,
		Address:   "San Francisco, CA",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed demo user: %w", err)
	}

	return s, nil
}

// Create registers a new user.
func (s *UserStore) Create(name, email, password string, loc *session.Location) (session.User, error) {
	hash, err := s.passwords.HashPassword(password)
	if err != nil {
		return session.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return session.User{}, fmt.Errorf("user already exists")
	}

	user := session.User{
		ID:       uuid.New().String(),
		Email:    email,
		Name:     name,
		Location: loc,
	}
	s.byEmail[email] = &userRecord{Profile: user, PasswordHash: hash}

	return user, nil
}

// Authenticate verifies credentials and returns the user profile.
func (s *UserStore) Authenticate(email, password string) (session.User, error) {
	s.mu.Lock()
	rec, exists := s.byEmail[email]
	s.mu.Unlock()

	if !exists {
		return session.User{}, fmt.Errorf("invalid credentials")
	}
	if err := s.passwords.VerifyPassword(password, rec.PasswordHash); err != nil {
		return session.User{}, fmt.Errorf("invalid credentials")
	}

	return rec.Profile, nil
}

// Get returns the user profile for an email.
func (s *UserStore) Get(email string) (session.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.byEmail[email]
	if !exists {
		return session.User{}, fmt.Errorf("user not found")
	}
	return rec.Profile, nil
}
