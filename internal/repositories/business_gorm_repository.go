package repositories

import (
	"fmt"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"

	"gorm.io/gorm"
)

// GORMBusinessRepository is a GORM implementation of BusinessRepository.
type GORMBusinessRepository struct {
	db *gorm.DB
}

// NewGORMBusinessRepository creates a new instance of GORMBusinessRepository.
func NewGORMBusinessRepository(db *gorm.DB) *GORMBusinessRepository {
	return &GORMBusinessRepository{
		db: db,
	}
}

// GetAll retrieves all businesses from the database.
func (r *GORMBusinessRepository) GetAll() ([]models.Business, error) {
	var businesses []models.Business
	if err := r.db.Find(&businesses).Error; err != nil {
		return nil, fmt.Errorf("failed to get all businesses: %w", err)
	}
	return businesses, nil
}

// GetByID retrieves a single business by its ID from the database.
func (r *GORMBusinessRepository) GetByID(id uint) (*models.Business, error) {
	var business models.Business
	if err := r.db.First(&business, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("business with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get business by ID %d: %w", id, err)
	}
	return &business, nil
}

// Create creates a new business in the database.
func (r *GORMBusinessRepository) Create(business *models.Business) error {
	if err := r.db.Create(business).Error; err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}
