package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/MiqayaMahmood/foodeez-0909/internal/services"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/cart"
)

// CheckoutHandler handles checkout session creation and order verification.
type CheckoutHandler struct {
	service *services.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// RegisterRoutes registers the checkout and order routes with the Fiber app.
// auth guards the order history; optionalAuth lets order verification attach
// the order to a logged-in visitor without requiring login.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler, optionalAuth fiber.Handler) {
	router.Post("/checkout", h.HandleCreateCheckoutSession)
	router.Get("/order/verify", optionalAuth, h.HandleVerifyOrder)
	router.Get("/orders/history", auth, h.HandleOrderHistory)
}

// CheckoutRequest is the request body for creating a checkout session.
type CheckoutRequest struct {
	Items        []cart.Item           `json:"items"`
	CustomerInfo services.CustomerInfo `json:"customerInfo"`
}

// HandleCreateCheckoutSession validates the cart and customer info and
// creates a hosted payment session, returning its ID for the redirect.
func (h *CheckoutHandler) HandleCreateCheckoutSession(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	sessionID, err := h.service.CreateCheckoutSession(c.Context(), req.Items, req.CustomerInfo)
	if err != nil {
		log.Printf("Error creating checkout session: %v", err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"sessionId": sessionID,
	})
}

// HandleVerifyOrder verifies a returned checkout session and returns the
// materialized order. Safe to call repeatedly for the same session.
func (h *CheckoutHandler) HandleVerifyOrder(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")

	order, err := h.service.VerifyOrder(c.Context(), sessionID, visitorEmail(c))
	if err != nil {
		log.Printf("Error verifying order for session %s: %v", sessionID, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// HandleOrderHistory returns the authenticated visitor's orders.
func (h *CheckoutHandler) HandleOrderHistory(c *fiber.Ctx) error {
	orders, err := h.service.OrderHistory(visitorID(c))
	if err != nil {
		log.Printf("Error getting order history: %v", err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}
