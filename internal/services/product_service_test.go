package services_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/services"
)

// MockProductRepo is a mock implementation of repositories.ProductRepository
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) GetByBusiness(businessID uint) ([]models.BusinessProduct, error) {
	args := m.Called(businessID)
	return args.Get(0).([]models.BusinessProduct), args.Error(1)
}

func (m *MockProductRepo) GetByID(id int64) (*models.BusinessProduct, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BusinessProduct), args.Error(1)
}

func (m *MockProductRepo) Create(product *models.BusinessProduct) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepo) Update(product *models.BusinessProduct) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepo) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetProductsByBusiness(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.BusinessProduct{
		{ID: 1, BusinessID: 42, ProductName: "Margherita", Price: 18.50},
		{ID: 2, BusinessID: 42, ProductName: "Quattro Stagioni", Price: 22.00},
	}

	mockRepo.On("GetByBusiness", uint(42)).Return(expectedProducts, nil).Once()

	products, err := service.GetProductsByBusiness(42)

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.BusinessProduct{ID: 1, BusinessID: 42, ProductName: "Margherita", Price: 18.50}

	// Test successful retrieval
	mockRepo.On("GetByID", int64(1)).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", int64(99)).Return(nil, fmt.Errorf("product with ID 99 not found")).Once()
	product, err = service.GetProductByID(99)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, services.ErrNotFound))
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo)

	newProduct := &models.BusinessProduct{BusinessID: 42, ProductName: "Calzone", Price: 19.00}

	// Test successful creation
	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test validation failure (missing name)
	var validationErr *services.ValidationError
	err = service.CreateProduct(&models.BusinessProduct{BusinessID: 42})
	assert.Error(t, err)
	assert.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "product_name")

	// Test creation failure (database error)
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo)

	updatedProduct := &models.BusinessProduct{ID: 1, BusinessID: 42, ProductName: "Margherita Grande", Price: 21.00}

	// Test successful update
	mockRepo.On("Update", updatedProduct).Return(nil).Once()
	err := service.UpdateProduct(updatedProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test update failure (product not found in repo)
	missing := &models.BusinessProduct{ID: 99, ProductName: "NonExistent"}
	mockRepo.On("Update", missing).Return(fmt.Errorf("product with ID 99 not found for update")).Once()
	err = service.UpdateProduct(missing)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for update")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo)

	// Test successful deletion
	mockRepo.On("Delete", int64(1)).Return(nil).Once()
	err := service.DeleteProduct(1)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion failure (product not found)
	mockRepo.On("Delete", int64(99)).Return(fmt.Errorf("product with ID 99 not found for deletion")).Once()
	err = service.DeleteProduct(99)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
	mockRepo.AssertExpectations(t)
}
