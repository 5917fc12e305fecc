package repositories

import (
	"fmt"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetByBusiness retrieves all menu products of a business from the database.
func (r *GORMProductRepository) GetByBusiness(businessID uint) ([]models.BusinessProduct, error) {
	var products []models.BusinessProduct
	if err := r.db.Where("business_id = ?", businessID).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for business %d: %w", businessID, err)
	}
	return products, nil
}

// GetByID retrieves a single menu product by its ID from the database.
func (r *GORMProductRepository) GetByID(id int64) (*models.BusinessProduct, error) {
	var product models.BusinessProduct
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create creates a new menu product in the database.
func (r *GORMProductRepository) Create(product *models.BusinessProduct) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing menu product in the database.
func (r *GORMProductRepository) Update(product *models.BusinessProduct) error {
	res := r.db.Save(product) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// This case happens if the record doesn't exist.
		// GORM's Save doesn't return ErrRecordNotFound if no rows affected
		// for an update, so we check RowsAffected.
		return fmt.Errorf("product with ID %d not found for update", product.ID)
	}
	return nil
}

// Delete deletes a menu product by its ID from the database.
func (r *GORMProductRepository) Delete(id int64) error {
	res := r.db.Delete(&models.BusinessProduct{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d not found for deletion", id)
	}
	return nil
}
