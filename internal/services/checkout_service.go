package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/repositories"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/cart"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/stripe"
)

const (
	checkoutCurrency = "chf"
	shippingCountry  = "CH"

	// estimatedDeliveryDelay is added to the verification time to produce the
	// delivery estimate shown on the order summary.
	estimatedDeliveryDelay = 45 * time.Minute
)

// OrderEventPublisher publishes order lifecycle events.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// CustomerInfo is the contact and shipping information collected at checkout.
type CustomerInfo struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Street    string `json:"street" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
	City      string `json:"city" validate:"required"`
	Country   string `json:"country" validate:"required"`
	Notes     string `json:"notes" validate:"omitempty,max=500"`
	SaveInfo  bool   `json:"saveInfo"`
}

// CheckoutService creates hosted payment sessions and, on return from the
// payment page, verifies them and materializes orders.
type CheckoutService struct {
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	visitorRepo  repositories.VisitorRepository
	payments     stripe.Client
	publisher    OrderEventPublisher
	validate     *validator.Validate
	origin       string // base URL the buyer is sent back to
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	visitorRepo repositories.VisitorRepository,
	payments stripe.Client,
	publisher OrderEventPublisher,
	origin string,
) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		visitorRepo: visitorRepo,
		payments:    payments,
		publisher:   publisher,
		validate:    validator.New(),
		origin:      origin,
	}
}

// CreateCheckoutSession validates the cart and customer info, resolves or
// creates the payment-provider customer by email, and creates a hosted
// checkout session. Returns the session ID for the client-side redirect.
func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, items []cart.Item, info CustomerInfo) (string, error) {
	if len(items) == 0 {
		return "", &ValidationError{Fields: []string{"items"}}
	}
	if err := s.validate.Struct(info); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return "", fmt.Errorf("failed to validate customer info: %w", err)
		}
		missing := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			missing = append(missing, fieldErr.Field())
		}
		return "", &ValidationError{Fields: missing}
	}

	fullName := strings.TrimSpace(info.FirstName + " " + info.LastName)
	customerID, err := s.payments.FindOrCreateCustomer(ctx, info.Email, fullName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	totalItems := 0
	totalPrice := 0.0
	lineItems := make([]stripe.LineItemParams, 0, len(items))
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice += item.Price * float64(item.Quantity)
		lineItems = append(lineItems, stripe.LineItemParams{
			Name:        item.Name,
			Description: item.Description,
			ImageURL:    item.Image,
			UnitAmount:  int64(math.Round(item.Price * 100)), // price in rappen
			Quantity:    item.Quantity,
			ProductID:   item.ID,
		})
	}

	metadata := map[string]string{
		"customer_name":    fullName,
		"customer_email":   info.Email,
		"customer_phone":   info.Phone,
		"customer_address": fmt.Sprintf("%s, %s %s, %s", info.Street, info.Zip, info.City, info.Country),
		"item_count":       strconv.Itoa(totalItems),
		"total_amount":     strconv.FormatFloat(totalPrice, 'f', 2, 64),
		"save_info":        strconv.FormatBool(info.SaveInfo),
	}
	if info.Notes != "" {
		metadata["notes"] = info.Notes
	}

	session, err := s.payments.CreateCheckoutSession(ctx, stripe.SessionParams{
		CustomerID:     customerID,
		Currency:       checkoutCurrency,
		SuccessURL:     s.origin + "/order/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:      s.origin + "/cart",
		AllowedCountry: shippingCountry,
		Metadata:       metadata,
		LineItems:      lineItems,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return session.ID, nil
}

// VerifyOrder retrieves a payment session, checks that it was paid, and
// materializes an order with one detail row per line item. The operation is
// idempotent per session ID: a session that already produced an order returns
// that order instead of creating a second one. authedEmail, when non-empty,
// attaches the order to the authenticated visitor's account.
func (s *CheckoutService) VerifyOrder(ctx context.Context, sessionID string, authedEmail string) (*models.Order, error) {
	if sessionID == "" {
		return nil, &ValidationError{Fields: []string{"session_id"}}
	}

	existing, err := s.orderRepo.GetBySessionID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing order: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	session, err := s.payments.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if session.PaymentStatus != "paid" {
		return nil, fmt.Errorf("%w: session has payment status %q", ErrPaymentIncomplete, session.PaymentStatus)
	}
	if session.LineItems == nil || len(session.LineItems.Data) == 0 {
		return nil, fmt.Errorf("%w: no line items in session", ErrNotFound)
	}
	lineItems := session.LineItems.Data

	firstProductID, err := lineItemProductID(lineItems[0])
	if err != nil {
		return nil, fmt.Errorf("%w: could not determine business for this order: %v", ErrNotFound, err)
	}
	product, err := s.productRepo.GetByID(firstProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, firstProductID)
	}
	businessID := product.BusinessID

	visitorID := s.resolveVisitor(session, authedEmail)

	firstName, lastName := splitFullName(customerName(session))
	now := time.Now()
	order := &models.Order{
		ID:                generateTemporaryID(),
		CreationDatetime:  now,
		BusinessID:        businessID,
		VisitorAccountID:  visitorID,
		StripeSessionID:   session.ID,
		PaymentDone:       1,
		OrderStatus:       1,
		OrderAmount:       float64(session.AmountTotal) / 100,
		OrderFinalAmount:  float64(session.AmountTotal) / 100,
		FirstName:         firstName,
		LastName:          lastName,
		EstimatedDelivery: now.Add(estimatedDeliveryDelay),
	}
	if session.ShippingCost != nil {
		order.ShippingCharges = float64(session.ShippingCost.AmountTotal) / 100
	}
	if details := session.CustomerDetails; details != nil {
		order.EmailAddress = details.Email
		order.PhoneNumber = details.Phone
		if details.Address != nil {
			order.Street = details.Address.Line1
			order.Zip = details.Address.PostalCode
			order.City = details.Address.City
			order.Country = details.Address.Country
		}
	}

	for _, item := range lineItems {
		productID, err := lineItemProductID(item)
		if err != nil {
			log.Printf("Skipping line item without product ID on session %s: %v", session.ID, err)
			continue
		}
		unitPrice := 0.0
		if item.Price != nil {
			unitPrice = float64(item.Price.UnitAmount) / 100
		}
		order.Details = append(order.Details, models.OrderDetail{
			ID:           generateTemporaryID(),
			OrderID:      order.ID,
			ProductID:    productID,
			ProductPrice: unitPrice,
			Quantity:     int(item.Quantity),
			LineTotal:    float64(item.AmountTotal) / 100,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		// A concurrent verification for the same session may have won the
		// unique-index race; return its order rather than failing.
		if winner, lookupErr := s.orderRepo.GetBySessionID(sessionID); lookupErr == nil && winner != nil {
			return winner, nil
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID":    order.ID,
			"businessID": order.BusinessID,
			"visitorID":  order.VisitorAccountID,
			"total":      order.OrderFinalAmount,
			"items":      len(order.Details),
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %d: %v", order.ID, err)
		}
	} else {
		log.Println("Order event publisher is not initialized. Skipping message publication.")
	}

	return order, nil
}

// OrderHistory returns all orders of a visitor account, newest first.
func (s *CheckoutService) OrderHistory(visitorAccountID int64) ([]models.Order, error) {
	return s.orderRepo.GetByVisitor(visitorAccountID)
}

// resolveVisitor picks the visitor account the order belongs to: the
// authenticated account when present, else a lookup-or-create by payment
// email when the buyer asked to save their info, else an anonymous
// placeholder account. Failures degrade to an unattached order.
func (s *CheckoutService) resolveVisitor(session *stripe.CheckoutSession, authedEmail string) int64 {
	if authedEmail != "" {
		if account, err := s.visitorRepo.GetByEmail(authedEmail); err == nil {
			return account.ID
		}
	}

	email := ""
	if session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}
	saveInfo := session.Metadata["save_info"] == "true"

	if !saveInfo || email == "" {
		// Anonymous placeholder, keyed on the session so a retried
		// verification resolves the same account.
		email = anonymousEmail(session.ID)
	}

	if account, err := s.visitorRepo.GetByEmail(email); err == nil {
		return account.ID
	}

	firstName, lastName := splitFullName(customerName(session))
	account := &models.VisitorAccount{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  generateOpaquePassword(),
	}
	if err := s.visitorRepo.Create(account); err != nil {
		log.Printf("Failed to create visitor account for order on session %s: %v", session.ID, err)
		return 0
	}
	return account.ID
}

func customerName(session *stripe.CheckoutSession) string {
	if session.CustomerDetails == nil {
		return ""
	}
	return session.CustomerDetails.Name
}

func splitFullName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func lineItemProductID(item stripe.LineItem) (int64, error) {
	if item.Price == nil || item.Price.Product == nil {
		return 0, fmt.Errorf("line item has no expanded product")
	}
	raw, ok := item.Price.Product.Metadata["productId"]
	if !ok {
		return 0, fmt.Errorf("product metadata has no productId")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid productId %q: %w", raw, err)
	}
	return id, nil
}

func anonymousEmail(sessionID string) string {
	suffix := sessionID
	if len(suffix) > 12 {
		suffix = suffix[len(suffix)-12:]
	}
	return fmt.Sprintf("anonymous+%s@foodeez.local", strings.ToLower(suffix))
}

// generateTemporaryID is a stand-in for an auto-incrementing key: seconds
// since epoch plus a random offset.
func generateTemporaryID() int64 {
	return time.Now().Unix() + rand.Int63n(1_000_000)
}

// generateOpaquePassword fills the password column of placeholder accounts
// with a value nobody can log in with.
func generateOpaquePassword() string {
	return "!placeholder-" + uuid.NewString()
}
