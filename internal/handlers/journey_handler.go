package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/services"
)

// JourneyHandler handles HTTP requests for visitor food journeys.
type JourneyHandler struct {
	service *services.JourneyService
}

// NewJourneyHandler creates a new JourneyHandler.
func NewJourneyHandler(service *services.JourneyService) *JourneyHandler {
	return &JourneyHandler{service: service}
}

// RegisterRoutes registers the food-journey routes with the Fiber app.
// Writes require authentication; reads are public.
func (h *JourneyHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	routes := router.Group("/food-journey")
	routes.Get("/", h.HandleGetJourneys)
	routes.Get("/:id", h.HandleGetJourneyByID)
	routes.Post("/", auth, h.HandleCreateJourney)
	routes.Put("/:id", auth, h.HandleUpdateJourney)
	routes.Delete("/:id", auth, h.HandleDeleteJourney)
}

// HandleGetJourneys lists all food journeys.
func (h *JourneyHandler) HandleGetJourneys(c *fiber.Ctx) error {
	journeys, err := h.service.GetAllJourneys()
	if err != nil {
		log.Printf("Error getting food journeys: %v", err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"journeys": journeys,
	})
}

// HandleGetJourneyByID returns a single food journey.
func (h *JourneyHandler) HandleGetJourneyByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "id must be a positive integer",
		})
	}

	journey, err := h.service.GetJourneyByID(int64(id))
	if err != nil {
		log.Printf("Error getting food journey %d: %v", id, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"journey": journey,
	})
}

// HandleCreateJourney stores a new food journey for the authenticated visitor.
func (h *JourneyHandler) HandleCreateJourney(c *fiber.Ctx) error {
	var journey models.VisitorFoodJourney
	if err := c.BodyParser(&journey); err != nil {
		log.Printf("Error parsing food journey request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	journey.VisitorAccountID = visitorID(c)

	if err := h.service.CreateJourney(&journey); err != nil {
		log.Printf("Error creating food journey: %v", err)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"journey": journey,
	})
}

// HandleUpdateJourney applies edits to a journey owned by the authenticated visitor.
func (h *JourneyHandler) HandleUpdateJourney(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "id must be a positive integer",
		})
	}

	var journey models.VisitorFoodJourney
	if err := c.BodyParser(&journey); err != nil {
		log.Printf("Error parsing food journey request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	journey.ID = int64(id)

	if err := h.service.UpdateJourney(&journey, visitorID(c)); err != nil {
		log.Printf("Error updating food journey %d: %v", id, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"journey": journey,
	})
}

// HandleDeleteJourney deletes a journey owned by the authenticated visitor.
func (h *JourneyHandler) HandleDeleteJourney(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "id must be a positive integer",
		})
	}

	if err := h.service.DeleteJourney(int64(id), visitorID(c)); err != nil {
		log.Printf("Error deleting food journey %d: %v", id, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
