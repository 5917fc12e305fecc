package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/services"
)

// ReviewHandler handles HTTP requests for visitor business reviews.
type ReviewHandler struct {
	service *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// RegisterRoutes registers the review routes with the Fiber app. Writes
// require authentication; listing is public.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	routes := router.Group("/reviews")
	routes.Get("/", h.HandleGetReviews)
	routes.Post("/", auth, h.HandleCreateReview)
	routes.Delete("/:id", auth, h.HandleDeleteReview)
}

// HandleGetReviews lists the reviews of a business.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	businessID := c.QueryInt("businessId")
	if businessID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "businessId query parameter is required",
		})
	}

	reviews, err := h.service.GetReviewsByBusiness(uint(businessID))
	if err != nil {
		log.Printf("Error getting reviews for business %d: %v", businessID, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reviews": reviews,
	})
}

// HandleCreateReview stores a new review authored by the authenticated visitor.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var review models.VisitorBusinessReview
	if err := c.BodyParser(&review); err != nil {
		log.Printf("Error parsing review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	review.VisitorAccountID = visitorID(c)

	if err := h.service.CreateReview(&review); err != nil {
		log.Printf("Error creating review: %v", err)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"review":  review,
	})
}

// HandleDeleteReview deletes a review owned by the authenticated visitor.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "id must be a positive integer",
		})
	}

	if err := h.service.DeleteReview(int64(id), visitorID(c)); err != nil {
		log.Printf("Error deleting review %d: %v", id, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
