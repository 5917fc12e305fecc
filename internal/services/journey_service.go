package services

import (
	"fmt"
	"time"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/repositories"
)

// JourneyService handles visitor food journey stories.
type JourneyService struct {
	repo        repositories.JourneyRepository
	visitorRepo repositories.VisitorRepository
}

// NewJourneyService creates a new JourneyService.
func NewJourneyService(repo repositories.JourneyRepository, visitorRepo repositories.VisitorRepository) *JourneyService {
	return &JourneyService{repo: repo, visitorRepo: visitorRepo}
}

// CreateJourney validates and stores a new food journey entry. The author's
// display name and email are filled in from their account when not provided.
func (s *JourneyService) CreateJourney(journey *models.VisitorFoodJourney) error {
	var missing []string
	if journey.Title == "" {
		missing = append(missing, "title")
	}
	if journey.Description == "" {
		missing = append(missing, "description")
	}
	if journey.RestaurantName == "" {
		missing = append(missing, "restaurant_name")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	if journey.VisitorName == "" || journey.VisitorEmailAddress == "" {
		if account, err := s.visitorRepo.GetByID(journey.VisitorAccountID); err == nil {
			if journey.VisitorName == "" {
				journey.VisitorName = account.FirstName + " " + account.LastName
			}
			if journey.VisitorEmailAddress == "" {
				journey.VisitorEmailAddress = account.Email
			}
			if journey.VisitorPic == "" {
				journey.VisitorPic = account.Pic
			}
		}
	}
	journey.CreationDatetime = time.Now()

	if err := s.repo.Create(journey); err != nil {
		return fmt.Errorf("failed to create food journey: %w", err)
	}
	return nil
}

// GetAllJourneys returns all food journeys, newest first.
func (s *JourneyService) GetAllJourneys() ([]models.VisitorFoodJourney, error) {
	return s.repo.GetAll()
}

// GetJourneyByID retrieves a single food journey.
func (s *JourneyService) GetJourneyByID(id int64) (*models.VisitorFoodJourney, error) {
	journey, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: food journey %d", ErrNotFound, id)
	}
	return journey, nil
}

// UpdateJourney applies edits to a journey. Only the author may update it.
func (s *JourneyService) UpdateJourney(journey *models.VisitorFoodJourney, visitorAccountID int64) error {
	existing, err := s.repo.GetByID(journey.ID)
	if err != nil {
		return fmt.Errorf("%w: food journey %d", ErrNotFound, journey.ID)
	}
	if existing.VisitorAccountID != visitorAccountID {
		return fmt.Errorf("%w: food journey %d belongs to another account", ErrForbidden, journey.ID)
	}

	journey.VisitorAccountID = existing.VisitorAccountID
	journey.CreationDatetime = existing.CreationDatetime
	return s.repo.Update(journey)
}

// DeleteJourney removes a journey. Only the author may delete it.
func (s *JourneyService) DeleteJourney(id int64, visitorAccountID int64) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("%w: food journey %d", ErrNotFound, id)
	}
	if existing.VisitorAccountID != visitorAccountID {
		return fmt.Errorf("%w: food journey %d belongs to another account", ErrForbidden, id)
	}
	return s.repo.Delete(id)
}
