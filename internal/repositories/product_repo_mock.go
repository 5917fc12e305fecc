package repositories

import (
	"fmt"
	"sync"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[int64]models.BusinessProduct
	nextID   int64
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int64]models.BusinessProduct),
		nextID:   1,
	}
}

// GetByBusiness returns all menu products of a business.
func (r *MockProductRepository) GetByBusiness(businessID uint) ([]models.BusinessProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.BusinessProduct, 0)
	for _, p := range r.products {
		if p.BusinessID == businessID {
			productList = append(productList, p)
		}
	}
	return productList, nil
}

// GetByID returns a menu product by its ID.
func (r *MockProductRepository) GetByID(id int64) (*models.BusinessProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d not found", id)
	}
	return &product, nil
}

// Create adds a new menu product.
func (r *MockProductRepository) Create(product *models.BusinessProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing menu product.
func (r *MockProductRepository) Update(product *models.BusinessProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %d not found for update", product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a menu product by its ID.
func (r *MockProductRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %d not found for deletion", id)
	}
	delete(r.products, id)
	return nil
}
