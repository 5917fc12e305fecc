package services

import (
	"fmt"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/repositories"
)

// ProductService handles business logic related to menu products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetProductsByBusiness retrieves the menu of a business.
func (s *ProductService) GetProductsByBusiness(businessID uint) ([]models.BusinessProduct, error) {
	return s.repo.GetByBusiness(businessID)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id int64) (*models.BusinessProduct, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}
	return product, nil
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.BusinessProduct) error {
	if product.ProductName == "" {
		return &ValidationError{Fields: []string{"product_name"}}
	}
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.BusinessProduct) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id int64) error {
	return s.repo.Delete(id)
}
