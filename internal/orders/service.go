package orders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/techvault/storefront/internal/cart"
	"github.com/techvault/storefront/internal/errors"
	"github.com/techvault/storefront/internal/models"
	"github.com/techvault/storefront/internal/pricing"
)

const estimatedDeliveryDays = 5

type Service interface {
	Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

// service keeps submitted orders in memory for the lifetime of the session.
type service struct {
	mu         sync.Mutex
	orders     map[uuid.UUID]*models.Order
	store      *cart.Store
	calculator *pricing.Calculator
}

func NewService(store *cart.Store, calculator *pricing.Calculator) Service {
	return &service{
		orders:     make(map[uuid.UUID]*models.Order),
		store:      store,
		calculator: calculator,
	}
}

// Create snapshots the current cart into an order, prices it, and clears the
// cart on success.
func (s *service) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {

	items := s.store.Items()

	if len(items) == 0 {
		return nil, errors.BadRequestError("Cannot create order with empty cart")
	}

	method := req.ShippingMethod
	if method == "" {
		method = models.ShippingStandard
	}

	now := time.Now()

	order := &models.Order{
		ID:                uuid.New(),
		Items:             items,
		Totals:            s.calculator.Totals(items, method),
		ShippingMethod:    method,
		ShippingAddress:   &req.ShippingAddress,
		Status:            models.OrderStatusProcessing,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.AddDate(0, 0, estimatedDeliveryDays),
	}

	s.mu.Lock()
	s.orders[order.ID] = order
	s.mu.Unlock()

	s.store.Clear(ctx)

	return order, nil
}

func (s *service) Get(_ context.Context, id uuid.UUID) (*models.Order, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, errors.NotFoundError("Order not found")
	}

	copied := *order

	return &copied, nil
}

func (s *service) UpdateStatus(_ context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, errors.NotFoundError("Order not found")
	}

	order.Status = status
	order.UpdatedAt = time.Now()

	copied := *order

	return &copied, nil
}
