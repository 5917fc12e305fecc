package repositories

import (
	"fmt"
	"sync"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
)

type cacheKey struct {
	businessID uint
	placeID    string
}

// MockPlaceCacheRepository is an in-memory implementation of PlaceCacheRepository.
type MockPlaceCacheRepository struct {
	reviews map[cacheKey][]models.BusinessGoogleReview
	hours   map[cacheKey][]models.BusinessOpeningHours
	images  map[cacheKey][]models.BusinessGoogleImage
	mu      sync.RWMutex
}

// NewMockPlaceCacheRepository creates a new instance of MockPlaceCacheRepository.
func NewMockPlaceCacheRepository() *MockPlaceCacheRepository {
	return &MockPlaceCacheRepository{
		reviews: make(map[cacheKey][]models.BusinessGoogleReview),
		hours:   make(map[cacheKey][]models.BusinessOpeningHours),
		images:  make(map[cacheKey][]models.BusinessGoogleImage),
	}
}

// GetReviews returns the cached review rows for a key.
func (r *MockPlaceCacheRepository) GetReviews(businessID uint, placeID string) ([]models.BusinessGoogleReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reviews[cacheKey{businessID, placeID}], nil
}

// GetOpeningHours returns the cached opening-hour rows for a key.
func (r *MockPlaceCacheRepository) GetOpeningHours(businessID uint, placeID string) ([]models.BusinessOpeningHours, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hours[cacheKey{businessID, placeID}], nil
}

// GetImages returns the cached photo rows for a key.
func (r *MockPlaceCacheRepository) GetImages(businessID uint, placeID string) ([]models.BusinessGoogleImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.images[cacheKey{businessID, placeID}], nil
}

// CountsForKey returns the row counts for the key in all three row sets.
func (r *MockPlaceCacheRepository) CountsForKey(businessID uint, placeID string) (int64, int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key := cacheKey{businessID, placeID}
	return int64(len(r.reviews[key])), int64(len(r.hours[key])), int64(len(r.images[key])), nil
}

// SaveReviews appends review rows.
func (r *MockPlaceCacheRepository) SaveReviews(reviews []models.BusinessGoogleReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rev := range reviews {
		key := cacheKey{rev.BusinessID, rev.PlaceID}
		r.reviews[key] = append(r.reviews[key], rev)
	}
	return nil
}

// SaveOpeningHours appends opening-hour rows.
func (r *MockPlaceCacheRepository) SaveOpeningHours(hours []models.BusinessOpeningHours) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range hours {
		key := cacheKey{h.BusinessID, h.PlaceID}
		r.hours[key] = append(r.hours[key], h)
	}
	return nil
}

// SaveImages appends photo rows.
func (r *MockPlaceCacheRepository) SaveImages(images []models.BusinessGoogleImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, img := range images {
		key := cacheKey{img.BusinessID, img.PlaceID}
		r.images[key] = append(r.images[key], img)
	}
	return nil
}

// PurgeForBusiness removes all cached rows for a business.
func (r *MockPlaceCacheRepository) PurgeForBusiness(businessID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	purged := false
	for key := range r.reviews {
		if key.businessID == businessID {
			delete(r.reviews, key)
			purged = true
		}
	}
	for key := range r.hours {
		if key.businessID == businessID {
			delete(r.hours, key)
			purged = true
		}
	}
	for key := range r.images {
		if key.businessID == businessID {
			delete(r.images, key)
			purged = true
		}
	}
	if !purged {
		return fmt.Errorf("no cached rows found for business %d", businessID)
	}
	return nil
}
