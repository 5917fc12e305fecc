package repositories

import "github.com/MiqayaMahmood/foodeez-0909/internal/models"

// VisitorRepository defines the interface for visitor account data access.
type VisitorRepository interface {
	Create(account *models.VisitorAccount) error
	GetByEmail(email string) (*models.VisitorAccount, error)
	GetByID(id int64) (*models.VisitorAccount, error)
}
