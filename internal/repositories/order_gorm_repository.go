package repositories

import (
	"fmt"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetByID retrieves a single order with its line items by ID.
func (r *GORMOrderRepository) GetByID(id int64) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Details").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	return &order, nil
}

// GetBySessionID retrieves the order materialized for a payment session.
// Returns (nil, nil) when no order exists for the session yet.
func (r *GORMOrderRepository) GetBySessionID(sessionID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Details").First(&order, "stripe_session_id = ?", sessionID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order by session ID: %w", err)
	}
	return &order, nil
}

// GetByVisitor retrieves all orders of a visitor account, newest first.
func (r *GORMOrderRepository) GetByVisitor(visitorAccountID int64) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Details").
		Where("visitor_account_id = ?", visitorAccountID).
		Order("creation_datetime DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for visitor %d: %w", visitorAccountID, err)
	}
	return orders, nil
}

// Create creates a new order together with its line items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}
