package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MiqayaMahmood/foodeez-0909/internal/services"
)

// errorResponse maps service errors onto HTTP statuses and a uniform
// {"success": false, "error": ...} body.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrPaymentIncomplete):
		status = fiber.StatusPaymentRequired
	case errors.Is(err, services.ErrUpstream):
		status = fiber.StatusBadGateway
	case errors.Is(err, services.ErrConfig):
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

// visitorID returns the authenticated visitor account id from the request
// context, or 0 for anonymous requests.
func visitorID(c *fiber.Ctx) int64 {
	if id, ok := c.Locals("visitor_account_id").(int64); ok {
		return id
	}
	return 0
}

// visitorEmail returns the authenticated visitor email, or "" for anonymous
// requests.
func visitorEmail(c *fiber.Ctx) string {
	if email, ok := c.Locals("email").(string); ok {
		return email
	}
	return ""
}
