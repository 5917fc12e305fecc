package repositories

import (
	"fmt"
	"log"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"

	"gorm.io/gorm"
)

// GORMPlaceCacheRepository is a GORM implementation of PlaceCacheRepository.
type GORMPlaceCacheRepository struct {
	db *gorm.DB
}

// NewGORMPlaceCacheRepository creates a new instance of GORMPlaceCacheRepository.
func NewGORMPlaceCacheRepository(db *gorm.DB) *GORMPlaceCacheRepository {
	return &GORMPlaceCacheRepository{
		db: db,
	}
}

// GetReviews retrieves the cached review rows for a (business id, place id) key.
func (r *GORMPlaceCacheRepository) GetReviews(businessID uint, placeID string) ([]models.BusinessGoogleReview, error) {
	var reviews []models.BusinessGoogleReview
	if err := r.db.Where("business_id = ? AND place_id = ?", businessID, placeID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get cached reviews for business %d: %w", businessID, err)
	}
	return reviews, nil
}

// GetOpeningHours retrieves the cached opening-hour rows for a (business id, place id) key.
func (r *GORMPlaceCacheRepository) GetOpeningHours(businessID uint, placeID string) ([]models.BusinessOpeningHours, error) {
	var hours []models.BusinessOpeningHours
	if err := r.db.Where("business_id = ? AND place_id = ?", businessID, placeID).Find(&hours).Error; err != nil {
		return nil, fmt.Errorf("failed to get cached opening hours for business %d: %w", businessID, err)
	}
	return hours, nil
}

// GetImages retrieves the cached photo rows for a (business id, place id) key.
func (r *GORMPlaceCacheRepository) GetImages(businessID uint, placeID string) ([]models.BusinessGoogleImage, error) {
	var images []models.BusinessGoogleImage
	if err := r.db.Where("business_id = ? AND place_id = ?", businessID, placeID).Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to get cached images for business %d: %w", businessID, err)
	}
	return images, nil
}

// CountsForKey returns the row counts for the key in all three cache tables.
func (r *GORMPlaceCacheRepository) CountsForKey(businessID uint, placeID string) (int64, int64, int64, error) {
	var reviews, hours, images int64
	if err := r.db.Model(&models.BusinessGoogleReview{}).
		Where("business_id = ? AND place_id = ?", businessID, placeID).Count(&reviews).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count cached reviews: %w", err)
	}
	if err := r.db.Model(&models.BusinessOpeningHours{}).
		Where("business_id = ? AND place_id = ?", businessID, placeID).Count(&hours).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count cached opening hours: %w", err)
	}
	if err := r.db.Model(&models.BusinessGoogleImage{}).
		Where("business_id = ? AND place_id = ?", businessID, placeID).Count(&images).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count cached images: %w", err)
	}
	return reviews, hours, images, nil
}

// SaveReviews inserts review rows one by one, skipping rows that fail.
func (r *GORMPlaceCacheRepository) SaveReviews(reviews []models.BusinessGoogleReview) error {
	for i := range reviews {
		if err := r.db.Create(&reviews[i]).Error; err != nil {
			log.Printf("Failed to save cached review for business %d: %v", reviews[i].BusinessID, err)
		}
	}
	return nil
}

// SaveOpeningHours inserts opening-hour rows one by one, skipping rows that fail.
func (r *GORMPlaceCacheRepository) SaveOpeningHours(hours []models.BusinessOpeningHours) error {
	for i := range hours {
		if err := r.db.Create(&hours[i]).Error; err != nil {
			log.Printf("Failed to save cached opening hours (%s) for business %d: %v", hours[i].Day, hours[i].BusinessID, err)
		}
	}
	return nil
}

// SaveImages inserts photo rows one by one, skipping rows that fail.
func (r *GORMPlaceCacheRepository) SaveImages(images []models.BusinessGoogleImage) error {
	for i := range images {
		if err := r.db.Create(&images[i]).Error; err != nil {
			log.Printf("Failed to save cached image for business %d: %v", images[i].BusinessID, err)
		}
	}
	return nil
}

// PurgeForBusiness removes all cached rows for a business across the three tables.
func (r *GORMPlaceCacheRepository) PurgeForBusiness(businessID uint) error {
	if err := r.db.Where("business_id = ?", businessID).Delete(&models.BusinessGoogleReview{}).Error; err != nil {
		return fmt.Errorf("failed to purge cached reviews for business %d: %w", businessID, err)
	}
	if err := r.db.Where("business_id = ?", businessID).Delete(&models.BusinessOpeningHours{}).Error; err != nil {
		return fmt.Errorf("failed to purge cached opening hours for business %d: %w", businessID, err)
	}
	if err := r.db.Where("business_id = ?", businessID).Delete(&models.BusinessGoogleImage{}).Error; err != nil {
		return fmt.Errorf("failed to purge cached images for business %d: %w", businessID, err)
	}
	return nil
}
