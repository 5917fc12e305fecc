package repositories

import "github.com/MiqayaMahmood/foodeez-0909/internal/models"

// JourneyRepository defines the interface for food-journey data access.
type JourneyRepository interface {
	Create(journey *models.VisitorFoodJourney) error
	GetAll() ([]models.VisitorFoodJourney, error)
	GetByID(id int64) (*models.VisitorFoodJourney, error)
	Update(journey *models.VisitorFoodJourney) error
	Delete(id int64) error
}
