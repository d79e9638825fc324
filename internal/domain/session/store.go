// internal/domain/session/store.go
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// Validation and state errors surfaced before any network call.
var (
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrInvalidEmail     = fmt.Errorf("a valid email address is required")
	ErrPasswordTooShort = fmt.Errorf("password must be at least 6 characters")
	ErrNameRequired     = fmt.Errorf("name is required")
	ErrLocationRequired = fmt.Errorf("location permission is required to register")
)

// Storage persists the session snapshot across runs.
type Storage interface {
	Load() (*Snapshot, error)
	Save(snap *Snapshot) error
	Clear() error
}

// AuthAPI is the authentication collaborator contract.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (User, string, error)
	Register(ctx context.Context, req RegisterRequest) (User, string, error)
	Logout(ctx context.Context) error
	CheckSessionStatus(ctx context.Context) (User, error)
}

// Store is the injectable session store: initialized on session start,
// cleared on logout or a 401 response. It owns the in-memory user and token
// and mirrors both to Storage.
type Store struct {
	mu      sync.Mutex
	user    *User
	token   string
	storage Storage
	auth    AuthAPI
	log     *logrus.Logger
}

// NewStore creates a session store. Call Init to restore persisted state.
func NewStore(storage Storage, auth AuthAPI, log *logrus.Logger) *Store {
	return &Store{
		storage: storage,
		auth:    auth,
		log:     log,
	}
}

// Init restores a persisted session, discarding it when the stored token is
// expired or the backend rejects it. A missing or unreadable snapshot leaves
// the store unauthenticated without error.
func (s *Store) Init(ctx context.Context) error {
	snap, err := s.storage.Load()
	if err != nil {
		s.log.WithError(err).Warn("Failed to restore session, starting unauthenticated")
		return nil
	}
	if snap == nil || snap.Token == "" {
		return nil
	}

	if tokenExpired(snap.Token) {
		s.log.Debug("Stored session token expired, clearing")
		return s.Clear()
	}

	s.mu.Lock()
	s.token = snap.Token
	s.mu.Unlock()

	user, err := s.auth.CheckSessionStatus(ctx)
	if err != nil {
		s.log.WithError(err).Info("Stored session rejected by backend, clearing")
		return s.Clear()
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	return nil
}

// Login validates credentials locally, authenticates against the backend and
// persists the resulting session.
func (s *Store) Login(ctx context.Context, email, password string) (User, error) {
	if !strings.Contains(email, "@") {
		return User{}, ErrInvalidEmail
	}
	if len(password) < 6 {
		return User{}, ErrPasswordTooShort
	}

	user, token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return User{}, err
	}

	if err := s.establish(user, token); err != nil {
		return User{}, err
	}
	return user, nil
}

// Register validates the registration data locally, creates the account and
// persists the resulting session.
func (s *Store) Register(ctx context.Context, req RegisterRequest) (User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return User{}, ErrNameRequired
	}
	if !strings.Contains(req.Email, "@") {
		return User{}, ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return User{}, ErrPasswordTooShort
	}
	if req.Latitude == nil || req.Longitude == nil {
		return User{}, ErrLocationRequired
	}

	user, token, err := s.auth.Register(ctx, req)
	if err != nil {
		return User{}, err
	}

	if err := s.establish(user, token); err != nil {
		return User{}, err
	}
	return user, nil
}

// Logout tells the backend to end the session and clears local state. Local
// state is cleared even when the backend call fails.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.WithError(err).Warn("Logout call failed, clearing local session anyway")
	}
	return s.Clear()
}

// Clear drops the in-memory session and its persisted snapshot. It is wired
// as the API client's unauthorized hook so any 401 ends the session.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		return fmt.Errorf("failed to clear session storage: %w", err)
	}
	return nil
}

// HandleUnauthorized clears the session in response to a 401. Errors are
// logged only; the hook runs inside request handling.
func (s *Store) HandleUnauthorized() {
	s.log.Info("Received unauthorized response, clearing session")
	if err := s.Clear(); err != nil {
		s.log.WithError(err).Warn("Failed to clear session after 401")
	}
}

// User returns the authenticated user, or ErrNotAuthenticated.
func (s *Store) User() (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return User{}, ErrNotAuthenticated
	}
	return *s.user, nil
}

// Token returns the current bearer token, empty when unauthenticated. Wired
// as the API client's token source.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether a user session is active.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *Store) establish(user User, token string) error {
	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()

	if err := s.storage.Save(&Snapshot{Token: token, User: user}); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; the client does not hold the signing secret.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
