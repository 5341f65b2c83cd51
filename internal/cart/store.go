package cart

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/techvault/storefront/internal/metrics"
	"github.com/techvault/storefront/internal/models"
)

// Subscriber is invoked with a snapshot of the line items after every
// mutation of the store.
type Subscriber func(items []models.LineItem)

// Store owns the authoritative line-item collection for the current session.
// Every mutation is written through to Storage under a single key; a failed
// write is logged and swallowed, the in-memory state stays authoritative.
type Store struct {
	mu      sync.Mutex
	items   []models.LineItem
	storage Storage
	logger  *slog.Logger
	subs    []Subscriber
}

// NewStore rehydrates the cart from storage. A missing or unreadable
// persisted cart yields an empty one; no error is surfaced.
func NewStore(ctx context.Context, storage Storage, logger *slog.Logger) *Store {

	s := &Store{storage: storage, logger: logger}

	items, found, err := storage.Load(ctx)
	if err != nil {
		logger.Warn("Failed to load persisted cart, starting empty", slog.String("error", err.Error()))
		return s
	}

	if found {
		s.items = items
		logger.Info("Cart rehydrated", slog.Int("items", len(items)))
	}

	metrics.CartSize.Set(float64(s.totalCountLocked()))

	return s
}

// Subscribe registers fn to run after every mutation. Not safe to call
// concurrently with mutations.
func (s *Store) Subscribe(fn Subscriber) {
	s.subs = append(s.subs, fn)
}

// AddItem merges into an existing row for the same product, preserving its
// AddedAt, or appends a new row with a snapshot of the product. Quantity is
// not clamped to the product's stock count here; that ceiling is enforced by
// the display layer only.
func (s *Store) AddItem(ctx context.Context, product models.Product, quantity int) {

	s.mu.Lock()

	if i := s.indexOf(product.ID); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		s.items = append(s.items, models.LineItem{
			ProductID: product.ID,
			Product:   product,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		})
	}

	metrics.CartOperations.WithLabelValues("add").Inc()
	s.afterMutation(ctx)
}

// RemoveItem deletes the row for productID. Absent ids are a silent no-op.
func (s *Store) RemoveItem(ctx context.Context, productID int64) {

	s.mu.Lock()

	if i := s.indexOf(productID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}

	metrics.CartOperations.WithLabelValues("remove").Inc()
	s.afterMutation(ctx)
}

// SetQuantity replaces the quantity on the matching row. A quantity of zero
// or less removes the row. Absent ids are a silent no-op.
func (s *Store) SetQuantity(ctx context.Context, productID int64, quantity int) {

	if quantity <= 0 {
		s.RemoveItem(ctx, productID)
		return
	}

	s.mu.Lock()

	if i := s.indexOf(productID); i >= 0 {
		s.items[i].Quantity = quantity
	}

	metrics.CartOperations.WithLabelValues("set_quantity").Inc()
	s.afterMutation(ctx)
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) {

	s.mu.Lock()
	s.items = nil

	metrics.CartOperations.WithLabelValues("clear").Inc()
	s.afterMutation(ctx)
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// TotalValue sums price times quantity over every row.
func (s *Store) TotalValue() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// TotalCount sums the quantities over every row.
func (s *Store) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalCountLocked()
}

func (s *Store) Contains(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.indexOf(productID) >= 0
}

func (s *Store) Find(productID int64) (models.LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		return s.items[i], true
	}

	return models.LineItem{}, false
}

func (s *Store) indexOf(productID int64) int {
	for i, item := range s.items {
		if item.ProductID == productID {
			return i
		}
	}

	return -1
}

func (s *Store) totalCountLocked() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}

	return count
}

func (s *Store) snapshotLocked() []models.LineItem {
	snapshot := make([]models.LineItem, len(s.items))
	copy(snapshot, s.items)

	return snapshot
}

// afterMutation persists the current items and notifies subscribers. Must be
// entered with s.mu held; it releases the lock.
func (s *Store) afterMutation(ctx context.Context) {

	snapshot := s.snapshotLocked()
	metrics.CartSize.Set(float64(s.totalCountLocked()))

	if err := s.storage.Save(ctx, s.items); err != nil {
		s.logger.Warn("Failed to persist cart", slog.String("error", err.Error()))
	}

	s.mu.Unlock()

	for _, fn := range s.subs {
		fn(snapshot)
	}
}
