package repositories

import (
	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
)

// BusinessRepository defines the interface for business listing data access.
type BusinessRepository interface {
	GetAll() ([]models.Business, error)
	GetByID(id uint) (*models.Business, error)
	Create(business *models.Business) error
}
