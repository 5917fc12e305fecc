package repositories

import (
	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
)

// PlaceCacheRepository defines the interface for the three cached
// Google-place row sets, all keyed by (business id, place id).
type PlaceCacheRepository interface {
	GetReviews(businessID uint, placeID string) ([]models.BusinessGoogleReview, error)
	GetOpeningHours(businessID uint, placeID string) ([]models.BusinessOpeningHours, error)
	GetImages(businessID uint, placeID string) ([]models.BusinessGoogleImage, error)

	// CountsForKey returns the row counts for the key in all three tables.
	CountsForKey(businessID uint, placeID string) (reviews, hours, images int64, err error)

	// The Save methods are best-effort bulk inserts: a failure writing one
	// row is logged and skipped without aborting the remaining rows.
	SaveReviews(reviews []models.BusinessGoogleReview) error
	SaveOpeningHours(hours []models.BusinessOpeningHours) error
	SaveImages(images []models.BusinessGoogleImage) error

	// PurgeForBusiness removes all cached rows for a business. Administrative
	// operation, not part of the request path.
	PurgeForBusiness(businessID uint) error
}
