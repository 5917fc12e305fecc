package repositories

import (
	"fmt"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"

	"gorm.io/gorm"
)

// GORMJourneyRepository is a GORM implementation of JourneyRepository.
type GORMJourneyRepository struct {
	db *gorm.DB
}

// NewGORMJourneyRepository creates a new instance of GORMJourneyRepository.
func NewGORMJourneyRepository(db *gorm.DB) *GORMJourneyRepository {
	return &GORMJourneyRepository{
		db: db,
	}
}

// Create creates a new food journey in the database.
func (r *GORMJourneyRepository) Create(journey *models.VisitorFoodJourney) error {
	if err := r.db.Create(journey).Error; err != nil {
		return fmt.Errorf("failed to create food journey: %w", err)
	}
	return nil
}

// GetAll retrieves all food journeys, newest first.
func (r *GORMJourneyRepository) GetAll() ([]models.VisitorFoodJourney, error) {
	var journeys []models.VisitorFoodJourney
	if err := r.db.Order("creation_datetime DESC").Find(&journeys).Error; err != nil {
		return nil, fmt.Errorf("failed to get all food journeys: %w", err)
	}
	return journeys, nil
}

// GetByID retrieves a single food journey by its ID.
func (r *GORMJourneyRepository) GetByID(id int64) (*models.VisitorFoodJourney, error) {
	var journey models.VisitorFoodJourney
	if err := r.db.First(&journey, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("food journey with ID %d not found", id)
		}
		return nil, fmt.Errorf("failed to get food journey by ID %d: %w", id, err)
	}
	return &journey, nil
}

// Update updates an existing food journey in the database.
func (r *GORMJourneyRepository) Update(journey *models.VisitorFoodJourney) error {
	res := r.db.Save(journey)
	if res.Error != nil {
		return fmt.Errorf("failed to update food journey: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("food journey with ID %d not found for update", journey.ID)
	}
	return nil
}

// Delete deletes a food journey by its ID.
func (r *GORMJourneyRepository) Delete(id int64) error {
	res := r.db.Delete(&models.VisitorFoodJourney{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete food journey: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("food journey with ID %d not found for deletion", id)
	}
	return nil
}
