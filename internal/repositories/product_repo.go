package repositories

import (
	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
)

// ProductRepository defines the interface for menu product data access.
type ProductRepository interface {
	GetByBusiness(businessID uint) ([]models.BusinessProduct, error)
	GetByID(id int64) (*models.BusinessProduct, error)
	Create(product *models.BusinessProduct) error
	Update(product *models.BusinessProduct) error
	Delete(id int64) error
}
