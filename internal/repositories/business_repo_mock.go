package repositories

import (
	"fmt"
	"sync"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
)

// MockBusinessRepository is an in-memory implementation of BusinessRepository.
type MockBusinessRepository struct {
	businesses map[uint]models.Business
	nextID     uint
	mu         sync.RWMutex
}

// NewMockBusinessRepository creates a new instance of MockBusinessRepository.
func NewMockBusinessRepository() *MockBusinessRepository {
	return &MockBusinessRepository{
		businesses: make(map[uint]models.Business),
		nextID:     1,
	}
}

// GetAll returns all businesses.
func (r *MockBusinessRepository) GetAll() ([]models.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	businessList := make([]models.Business, 0, len(r.businesses))
	for _, b := range r.businesses {
		businessList = append(businessList, b)
	}
	return businessList, nil
}

// GetByID returns a business by its ID.
func (r *MockBusinessRepository) GetByID(id uint) (*models.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	business, ok := r.businesses[id]
	if !ok {
		return nil, fmt.Errorf("business with ID %d not found", id)
	}
	return &business, nil
}

// Create adds a new business.
func (r *MockBusinessRepository) Create(business *models.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if business.ID == 0 {
		business.ID = r.nextID
		r.nextID++
	}
	r.businesses[business.ID] = *business
	return nil
}
