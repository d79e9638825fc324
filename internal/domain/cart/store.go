// internal/domain/cart/store.go
package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/domain/catalog"
)

// Storage persists the full cart line set. Implementations live under
// internal/infrastructure/storage.
type Storage interface {
	Load() ([]Line, error)
	Save(lines []Line) error
	Clear() error
}

// Notifier surfaces user-facing notifications ("saved to cart").
type Notifier interface {
	Notify(message string)
}

// EventRecorder records best-effort telemetry events. Failures are the
// recorder's problem; the store never sees them.
type EventRecorder interface {
	Record(ctx context.Context, productID, category, eventType string)
}

// Store is the persistent cart store. It owns the in-memory line set,
// persists every mutation and restores persisted state on construction.
type Store struct {
	mu       sync.Mutex
	lines    []Line
	storage  Storage
	notifier Notifier
	events   EventRecorder
	log      *logrus.Logger
}

// NewStore creates a cart store and restores any previously persisted line
// set. A load or parse failure degrades to an empty cart; it is logged, not
// returned.
func NewStore(storage Storage, notifier Notifier, events EventRecorder, log *logrus.Logger) *Store {
	s := &Store{
		storage:  storage,
		notifier: notifier,
		events:   events,
		log:      log,
	}

	lines, err := storage.Load()
	if err != nil {
		log.WithError(err).Warn("Failed to restore cart, starting empty")
		return s
	}
	s.lines = lines

	return s
}

// AddItem adds a product to the cart. If a line with the same
// (product, size, color) identity exists its quantity is incremented;
// otherwise a new line is appended. The updated line set is persisted and a
// "saved to cart" notification plus an add_to_cart event are emitted.
func (s *Store) AddItem(ctx context.Context, product catalog.Product, size, color string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	key := LineKey{ProductID: product.ID, Size: size, Color: color}

	merged := false
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, Line{
			Product:       product,
			SelectedSize:  size,
			SelectedColor: color,
			Quantity:      quantity,
			AddedAt:       time.Now().UTC(),
		})
	}

	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if s.events != nil {
		s.events.Record(ctx, product.ID, product.Category, "add_to_cart")
	}
	if s.notifier != nil {
		s.notifier.Notify("Product saved to your cart")
	}

	return nil
}

// RemoveItem deletes the matching line and persists. Removing an absent line
// is a no-op.
func (s *Store) RemoveItem(key LineKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persistLocked()
		}
	}

	return nil
}

// UpdateQuantity sets a line's quantity exactly. A quantity of zero or less
// behaves as RemoveItem.
func (s *Store) UpdateQuantity(key LineKey, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity = quantity
			return s.persistLocked()
		}
	}

	return nil
}

// TotalItems returns the sum of quantities across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal returns the sum of price times quantity across all lines, in
// cents. An empty cart has a subtotal of 0.
func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, l := range s.lines {
		total += l.LineTotal()
	}
	return total
}

// Lines returns a snapshot copy of the cart lines.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Line(nil), s.lines...)
}

// Clear empties both the in-memory state and the persisted line set.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	if err := s.storage.Clear(); err != nil {
		return fmt.Errorf("failed to clear cart storage: %w", err)
	}
	return nil
}

func (s *Store) persistLocked() error {
	if err := s.storage.Save(s.lines); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
