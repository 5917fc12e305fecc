package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/MiqayaMahmood/foodeez-0909/internal/services"
)

// PlaceDataHandler handles HTTP requests for unified place data.
type PlaceDataHandler struct {
	service *services.PlaceDataService
}

// NewPlaceDataHandler creates a new PlaceDataHandler.
func NewPlaceDataHandler(service *services.PlaceDataService) *PlaceDataHandler {
	return &PlaceDataHandler{service: service}
}

// RegisterRoutes registers the place-data routes with the Fiber app. Reads are
// public; the cache purge requires authentication.
func (h *PlaceDataHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	routes := router.Group("/google-data")
	routes.Get("/:businessId", h.HandleGetPlaceData)
	routes.Get("/:businessId/check", h.HandleCheckCachedData)
	routes.Delete("/:businessId/cache", auth, h.HandlePurgeCachedData)
}

// HandleGetPlaceData returns the reviews, opening hours and photos of a
// business, served from the cache tables when complete and from the external
// API otherwise. ?refresh=true bypasses the cache read.
func (h *PlaceDataHandler) HandleGetPlaceData(c *fiber.Ctx) error {
	businessID, err := c.ParamsInt("businessId")
	if err != nil || businessID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "businessId must be a positive integer",
		})
	}

	forceRefresh := c.Query("refresh") == "true"

	data, err := h.service.GetPlaceData(c.Context(), uint(businessID), forceRefresh)
	if err != nil {
		log.Printf("Error getting place data for business %d: %v", businessID, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// HandlePurgeCachedData drops all cached place data for a business so the
// next request repopulates it from the external API.
func (h *PlaceDataHandler) HandlePurgeCachedData(c *fiber.Ctx) error {
	businessID, err := c.ParamsInt("businessId")
	if err != nil || businessID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "businessId must be a positive integer",
		})
	}

	if err := h.service.PurgeCachedData(c.Context(), uint(businessID)); err != nil {
		log.Printf("Error purging cached data for business %d: %v", businessID, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "cached data purged",
	})
}

// HandleCheckCachedData reports whether a business has complete cached place
// data, without triggering an external fetch.
func (h *PlaceDataHandler) HandleCheckCachedData(c *fiber.Ctx) error {
	businessID, err := c.ParamsInt("businessId")
	if err != nil || businessID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "businessId must be a positive integer",
		})
	}

	hasData, err := h.service.HasCachedData(c.Context(), uint(businessID))
	if err != nil {
		log.Printf("Error checking cached data for business %d: %v", businessID, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"cached":  hasData,
	})
}
