// internal/domain/session/store_test.go
package session

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	snap    *Snapshot
	loadErr error
}

func (m *memoryStorage) Load() (*Snapshot, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.snap, nil
}

func (m *memoryStorage) Save(snap *Snapshot) error {
	m.snap = snap
	return nil
}

func (m *memoryStorage) Clear() error {
	m.snap = nil
	return nil
}

type fakeAuth struct {
	user       User
	token      string
	loginErr   error
	logoutErr  error
	statusErr  error
	loginCalls int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (User, string, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return User{}, "", f.loginErr
	}
	return f.user, f.token, nil
}

func (f *fakeAuth) Register(ctx context.Context, req RegisterRequest) (User, string, error) {
	if f.loginErr != nil {
		return User{}, "", f.loginErr
	}
	return f.user, f.token, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	return f.logoutErr
}

func (f *fakeAuth) CheckSessionStatus(ctx context.Context) (User, error) {
	if f.statusErr != nil {
		return User{}, f.statusErr
	}
	return f.user, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testUser() User {
	return User{ID: "u-1", Email: "demo@stylehub.test", Name: "Demo Shopper"}
}

// signedToken builds an HS256 token with the given expiry. The store only
// inspects the claims, so any signing key works.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestLoginValidation(t *testing.T) {
	auth := &fakeAuth{}
	store := NewStore(&memoryStorage{}, auth, testLogger())
	ctx := context.Background()

	_, err := store.Login(ctx, "not-an-email", "shopper123")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = store.Login(ctx, "demo@stylehub.test", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	assert.Equal(t, 0, auth.loginCalls, "validation failures never reach the backend")
}

func TestLoginEstablishesSession(t *testing.T) {
	storage := &memoryStorage{}
	auth := &fakeAuth{user: testUser(), token: "tok-1"}
	store := NewStore(storage, auth, testLogger())

	user, err := store.Login(context.Background(), "demo@stylehub.test", "shopper123")
	require.NoError(t, err)

	assert.Equal(t, "Demo Shopper", user.Name)
	assert.True(t, store.Authenticated())
	assert.Equal(t, "tok-1", store.Token())

	require.NotNil(t, storage.snap, "session is persisted")
	assert.Equal(t, "tok-1", storage.snap.Token)
}

func TestLoginBackendRejection(t *testing.T) {
	auth := &fakeAuth{loginErr: fmt.Errorf("invalid credentials")}
	store := NewStore(&memoryStorage{}, auth, testLogger())

	_, err := store.Login(context.Background(), "demo@stylehub.test", "wrongpass")
	require.Error(t, err)
	assert.False(t, store.Authenticated())
}

func TestRegisterValidation(t *testing.T) {
	store := NewStore(&memoryStorage{}, &fakeAuth{}, testLogger())
	ctx := context.Background()
	lat, lon := 37.77, -122.42

	_, err := store.Register(ctx, RegisterRequest{Email: "a@b.c", Password: "shopper123", Latitude: &lat, Longitude: &lon})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = store.Register(ctx, RegisterRequest{Name: "A", Email: "nope", Password: "shopper123", Latitude: &lat, Longitude: &lon})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = store.Register(ctx, RegisterRequest{Name: "A", Email: "a@b.c", Password: "short", Latitude: &lat, Longitude: &lon})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = store.Register(ctx, RegisterRequest{Name: "A", Email: "a@b.c", Password: "shopper123"})
	assert.ErrorIs(t, err, ErrLocationRequired)
}

func TestInitRestoresSession(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	storage := &memoryStorage{snap: &Snapshot{Token: token, User: testUser()}}
	auth := &fakeAuth{user: testUser()}
	store := NewStore(storage, auth, testLogger())

	require.NoError(t, store.Init(context.Background()))

	assert.True(t, store.Authenticated())
	assert.Equal(t, token, store.Token())
}

func TestInitExpiredTokenClears(t *testing.T) {
	token := signedToken(t, time.Now().Add(-time.Hour))
	storage := &memoryStorage{snap: &Snapshot{Token: token, User: testUser()}}
	store := NewStore(storage, &fakeAuth{}, testLogger())

	require.NoError(t, store.Init(context.Background()))

	assert.False(t, store.Authenticated())
	assert.Nil(t, storage.snap, "expired snapshot is discarded")
}

func TestInitBackendRejectionClears(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	storage := &memoryStorage{snap: &Snapshot{Token: token, User: testUser()}}
	auth := &fakeAuth{statusErr: fmt.Errorf("unauthorized")}
	store := NewStore(storage, auth, testLogger())

	require.NoError(t, store.Init(context.Background()))

	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, storage.snap)
}

func TestInitUnreadableSnapshotStartsUnauthenticated(t *testing.T) {
	storage := &memoryStorage{loadErr: fmt.Errorf("corrupt state")}
	store := NewStore(storage, &fakeAuth{}, testLogger())

	require.NoError(t, store.Init(context.Background()))
	assert.False(t, store.Authenticated())
}

func TestLogoutClearsEvenWhenBackendFails(t *testing.T) {
	storage := &memoryStorage{}
	auth := &fakeAuth{user: testUser(), token: "tok-1", logoutErr: fmt.Errorf("network down")}
	store := NewStore(storage, auth, testLogger())

	_, err := store.Login(context.Background(), "demo@stylehub.test", "shopper123")
	require.NoError(t, err)

	require.NoError(t, store.Logout(context.Background()))
	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, storage.snap)
}

func TestHandleUnauthorizedClearsSession(t *testing.T) {
	storage := &memoryStorage{}
	auth := &fakeAuth{user: testUser(), token: "tok-1"}
	store := NewStore(storage, auth, testLogger())

	_, err := store.Login(context.Background(), "demo@stylehub.test", "shopper123")
	require.NoError(t, err)

	store.HandleUnauthorized()

	assert.False(t, store.Authenticated())
	_, err = store.User()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
