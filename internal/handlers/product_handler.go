package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/services"
)

// ProductHandler handles HTTP requests for menu products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers the product routes with the Fiber app. Menu
// management requires authentication; reading a menu is public.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	routes := router.Group("/products")
	routes.Get("/", h.HandleGetProducts)
	routes.Get("/:id", h.HandleGetProductByID)
	routes.Post("/", auth, h.HandleCreateProduct)
	routes.Put("/:id", auth, h.HandleUpdateProduct)
	routes.Delete("/:id", auth, h.HandleDeleteProduct)
}

// HandleGetProducts lists the menu of a business.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	businessID := c.QueryInt("businessId")
	if businessID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "businessId query parameter is required",
		})
	}

	products, err := h.service.GetProductsByBusiness(uint(businessID))
	if err != nil {
		log.Printf("Error getting products for business %d: %v", businessID, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

// HandleGetProductByID returns a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "id must be a positive integer",
		})
	}

	product, err := h.service.GetProductByID(int64(id))
	if err != nil {
		log.Printf("Error getting product %d: %v", id, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleCreateProduct creates a new menu product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.BusinessProduct
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleUpdateProduct updates an existing menu product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "id must be a positive integer",
		})
	}

	var product models.BusinessProduct
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	product.ID = int64(id)

	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleDeleteProduct deletes a menu product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "id must be a positive integer",
		})
	}

	if err := h.service.DeleteProduct(int64(id)); err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
