package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[int64]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[int64]models.Order),
	}
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id int64) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %d not found", id)
	}
	return &order, nil
}

// GetBySessionID returns the order materialized for a payment session, or
// (nil, nil) when no order exists for the session.
func (r *MockOrderRepository) GetBySessionID(sessionID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.StripeSessionID == sessionID {
			found := order
			return &found, nil
		}
	}
	return nil, nil
}

// GetByVisitor returns all orders of a visitor account.
func (r *MockOrderRepository) GetByVisitor(visitorAccountID int64) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.VisitorAccountID == visitorAccountID {
			orderList = append(orderList, order)
		}
	}
	return orderList, nil
}

// Create adds a new order. A second order for the same session is rejected,
// mirroring the unique index on the GORM implementation.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.StripeSessionID != "" && existing.StripeSessionID == order.StripeSessionID {
			return fmt.Errorf("order for session %s already exists", order.StripeSessionID)
		}
	}
	if order.CreationDatetime.IsZero() {
		order.CreationDatetime = time.Now()
	}
	r.orders[order.ID] = *order
	return nil
}
