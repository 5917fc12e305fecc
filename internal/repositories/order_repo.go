package repositories

import (
	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetByID(id int64) (*models.Order, error)
	// GetBySessionID returns the order materialized for a payment session,
	// or (nil, nil) when no order exists yet for that session.
	GetBySessionID(sessionID string) (*models.Order, error)
	GetByVisitor(visitorAccountID int64) ([]models.Order, error)
	Create(order *models.Order) error
	// Delete(id int64) error // Deletion of orders might be complex, so we'll omit for now.
}
