package repositories

import "github.com/MiqayaMahmood/foodeez-0909/internal/models"

// ReviewRepository defines the interface for visitor review data access.
type ReviewRepository interface {
	Create(review *models.VisitorBusinessReview) error
	GetByBusiness(businessID uint) ([]models.VisitorBusinessReview, error)
	GetByID(id int64) (*models.VisitorBusinessReview, error)
	Delete(id int64) error
}
