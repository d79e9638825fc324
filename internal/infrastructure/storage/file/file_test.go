// internal/infrastructure/storage/file/file_test.go
package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/session"
)

func TestCartStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "cart.json")
	store := NewCartStore(path)

	lines := []cart.Line{
		{
			Product:       catalog.Product{ID: "p-001", Name: "Classic Cotton T-Shirt", Price: 2999},
			SelectedSize:  "M",
			SelectedColor: "black",
			Quantity:      2,
			AddedAt:       time.Now().UTC().Truncate(time.Second),
		},
	}

	require.NoError(t, store.Save(lines))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, lines[0].Product.ID, loaded[0].Product.ID)
	assert.Equal(t, lines[0].Quantity, loaded[0].Quantity)
	assert.Equal(t, lines[0].SelectedSize, loaded[0].SelectedSize)
}

func TestCartStoreMissingFile(t *testing.T) {
	store := NewCartStore(filepath.Join(t.TempDir(), "missing.json"))

	lines, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestCartStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewCartStore(path).Load()
	assert.Error(t, err)
}

func TestCartStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewCartStore(path)

	require.NoError(t, store.Save([]cart.Line{{Quantity: 1}}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing an already-missing file is fine")

	lines, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	store := NewSessionStore(path)

	snap := &session.Snapshot{
		Token: "tok-1",
		User: session.User{
			ID:    "u-1",
			Email: "demo@stylehub.test",
			Name:  "Demo Shopper",
			Location: &session.Location{
				Latitude:  37.7749,
				Longitude: -122.4194,
				Address:   "San Francisco, CA",
			},
		},
	}

	require.NoError(t, store.Save(snap))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tok-1", loaded.Token)
	assert.Equal(t, "Demo Shopper", loaded.User.Name)
	require.NotNil(t, loaded.User.Location)
	assert.Equal(t, "San Francisco, CA", loaded.User.Location.Address)
}

func TestSessionStoreMissingFile(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "missing.json"))

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSessionStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewSessionStore(path)

	require.NoError(t, store.Save(&session.Snapshot{Token: "tok-1"}))
	require.NoError(t, store.Clear())

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}
