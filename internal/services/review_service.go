package services

import (
	"fmt"
	"time"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/repositories"
)

// ReviewService handles visitor-authored business reviews.
type ReviewService struct {
	repo repositories.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// CreateReview validates and stores a new review. New reviews start with one
// like (the author's own) and await approval before public listing.
func (s *ReviewService) CreateReview(review *models.VisitorBusinessReview) error {
	var missing []string
	if review.BusinessID == 0 {
		missing = append(missing, "business_id")
	}
	if review.Rating == "" {
		missing = append(missing, "rating")
	}
	if review.Remarks == "" {
		missing = append(missing, "remarks")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	review.LikeCount = 1
	review.Approved = 0
	review.CreationDatetime = time.Now()

	if err := s.repo.Create(review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetReviewsByBusiness returns all reviews of a business, newest first.
func (s *ReviewService) GetReviewsByBusiness(businessID uint) ([]models.VisitorBusinessReview, error) {
	return s.repo.GetByBusiness(businessID)
}

// DeleteReview removes a review. Only the author may delete it.
func (s *ReviewService) DeleteReview(id int64, visitorAccountID int64) error {
	review, err := s.repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("%w: review %d", ErrNotFound, id)
	}
	if review.VisitorAccountID != visitorAccountID {
		return fmt.Errorf("%w: review %d belongs to another account", ErrForbidden, id)
	}
	return s.repo.Delete(id)
}
