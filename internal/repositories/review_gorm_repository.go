package repositories

import (
	"fmt"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"

	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create creates a new visitor review in the database.
func (r *GORMReviewRepository) Create(review *models.VisitorBusinessReview) error {
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByBusiness retrieves all reviews of a business, newest first.
func (r *GORMReviewRepository) GetByBusiness(businessID uint) ([]models.VisitorBusinessReview, error) {
	var reviews []models.VisitorBusinessReview
	if err := r.db.Where("business_id = ?", businessID).
		Order("creation_datetime DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for business %d: %w", businessID, err)
	}
	return reviews, nil
}

// GetByID retrieves a single review by its ID.
func (r *GORMReviewRepository) GetByID(id int64) (*models.VisitorBusinessReview, error) {
	var review models.VisitorBusinessReview
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("review with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get review by ID %d: %w", id, err)
	}
	return &review, nil
}

// Delete deletes a review by its ID.
func (r *GORMReviewRepository) Delete(id int64) error {
	res := r.db.Delete(&models.VisitorBusinessReview{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %d not found for deletion", id)
	}
	return nil
}
