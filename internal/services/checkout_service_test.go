package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/repositories"
	"github.com/MiqayaMahmood/foodeez-0909/internal/services"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/cart"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/stripe"
)

// MockStripeClient is a mock implementation of stripe.Client
type MockStripeClient struct {
	mock.Mock
}

func (m *MockStripeClient) FindOrCreateCustomer(ctx context.Context, email, name string) (string, error) {
	args := m.Called(ctx, email, name)
	return args.String(0), args.Error(1)
}

func (m *MockStripeClient) CreateCheckoutSession(ctx context.Context, params stripe.SessionParams) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockStripeClient) RetrieveSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.OrderEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderCreated(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func validCustomerInfo() services.CustomerInfo {
	return services.CustomerInfo{
		FirstName: "Mira",
		LastName:  "Keller",
		Email:     "mira@example.com",
		Phone:     "+41791234567",
		Street:    "Bahnhofstrasse 1",
		Zip:       "8001",
		City:      "Zurich",
		Country:   "Switzerland",
	}
}

func sampleCartItems() []cart.Item {
	return []cart.Item{
		{ID: "7", Name: "Margherita", Price: 10.00, Quantity: 2, BusinessID: "42"},
		{ID: "9", Name: "Tiramisu", Price: 5.50, Quantity: 1, BusinessID: "42"},
	}
}

func paidSession(sessionID string) *stripe.CheckoutSession {
	return &stripe.CheckoutSession{
		ID:            sessionID,
		PaymentStatus: "paid",
		AmountTotal:   2550,
		Currency:      "chf",
		Metadata:      map[string]string{"save_info": "false"},
		CustomerDetails: &stripe.CustomerDetails{
			Name:  "Mira Keller",
			Email: "mira@example.com",
			Phone: "+41791234567",
			Address: &stripe.Address{
				Line1:      "Bahnhofstrasse 1",
				PostalCode: "8001",
				City:       "Zurich",
				Country:    "CH",
			},
		},
		ShippingCost: &stripe.ShippingCost{AmountTotal: 0},
		LineItems: &stripe.LineItemList{
			Data: []stripe.LineItem{
				{
					Description: "Margherita",
					Quantity:    2,
					AmountTotal: 2000,
					Price: &stripe.Price{
						UnitAmount: 1000,
						Product:    &stripe.Product{ID: "prod_1", Metadata: map[string]string{"productId": "7"}},
					},
				},
				{
					Description: "Tiramisu",
					Quantity:    1,
					AmountTotal: 550,
					Price: &stripe.Price{
						UnitAmount: 550,
						Product:    &stripe.Product{ID: "prod_2", Metadata: map[string]string{"productId": "9"}},
					},
				},
			},
		},
	}
}

func setupCheckoutService(t *testing.T) (*services.CheckoutService, *repositories.MockOrderRepository, *MockProductRepo, *MockVisitorRepository, *MockStripeClient, *MockEventPublisher) {
	t.Helper()

	orderRepo := repositories.NewMockOrderRepository()
	productRepo := new(MockProductRepo)
	visitorRepo := new(MockVisitorRepository)
	stripeClient := new(MockStripeClient)
	publisher := new(MockEventPublisher)

	service := services.NewCheckoutService(orderRepo, productRepo, visitorRepo, stripeClient, publisher, "http://localhost:3000")
	return service, orderRepo, productRepo, visitorRepo, stripeClient, publisher
}

func TestCreateCheckoutSession_EmptyCart(t *testing.T) {
	service, _, _, _, stripeClient, _ := setupCheckoutService(t)

	_, err := service.CreateCheckoutSession(context.Background(), nil, validCustomerInfo())

	var validationErr *services.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "items")
	stripeClient.AssertNotCalled(t, "CreateCheckoutSession")
}

func TestCreateCheckoutSession_MissingFields(t *testing.T) {
	service, _, _, _, stripeClient, _ := setupCheckoutService(t)

	info := validCustomerInfo()
	info.Email = ""
	info.City = ""

	_, err := service.CreateCheckoutSession(context.Background(), sampleCartItems(), info)

	var validationErr *services.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "Email")
	assert.Contains(t, validationErr.Fields, "City")
	stripeClient.AssertNotCalled(t, "CreateCheckoutSession")
}

func TestCreateCheckoutSession_Success(t *testing.T) {
	service, _, _, _, stripeClient, _ := setupCheckoutService(t)

	stripeClient.On("FindOrCreateCustomer", mock.Anything, "mira@example.com", "Mira Keller").
		Return("cus_123", nil).Once()
	stripeClient.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(params stripe.SessionParams) bool {
		return params.CustomerID == "cus_123" &&
			params.Currency == "chf" &&
			params.AllowedCountry == "CH" &&
			params.SuccessURL == "http://localhost:3000/order/success?session_id={CHECKOUT_SESSION_ID}" &&
			params.CancelURL == "http://localhost:3000/cart" &&
			len(params.LineItems) == 2 &&
			params.LineItems[0].UnitAmount == 1000 &&
			params.LineItems[0].Quantity == 2 &&
			params.LineItems[0].ProductID == "7" &&
			params.Metadata["item_count"] == "3" &&
			params.Metadata["total_amount"] == "25.50"
	})).Return(&stripe.CheckoutSession{ID: "cs_test_1"}, nil).Once()

	sessionID, err := service.CreateCheckoutSession(context.Background(), sampleCartItems(), validCustomerInfo())

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", sessionID)
	stripeClient.AssertExpectations(t)
}

func TestCreateCheckoutSession_StripeFailure(t *testing.T) {
	service, _, _, _, stripeClient, _ := setupCheckoutService(t)

	stripeClient.On("FindOrCreateCustomer", mock.Anything, mock.Anything, mock.Anything).
		Return("", fmt.Errorf("stripe error 500")).Once()

	_, err := service.CreateCheckoutSession(context.Background(), sampleCartItems(), validCustomerInfo())

	assert.True(t, errors.Is(err, services.ErrUpstream))
	stripeClient.AssertExpectations(t)
}

func TestVerifyOrder_PaymentIncompleteCreatesNoOrder(t *testing.T) {
	service, orderRepo, _, _, stripeClient, _ := setupCheckoutService(t)

	session := paidSession("cs_unpaid")
	session.PaymentStatus = "unpaid"
	stripeClient.On("RetrieveSession", mock.Anything, "cs_unpaid").Return(session, nil).Once()

	_, err := service.VerifyOrder(context.Background(), "cs_unpaid", "")

	assert.True(t, errors.Is(err, services.ErrPaymentIncomplete))
	existing, repoErr := orderRepo.GetBySessionID("cs_unpaid")
	require.NoError(t, repoErr)
	assert.Nil(t, existing)
}

func TestVerifyOrder_MaterializesOrder(t *testing.T) {
	service, orderRepo, productRepo, visitorRepo, stripeClient, publisher := setupCheckoutService(t)

	stripeClient.On("RetrieveSession", mock.Anything, "cs_paid").Return(paidSession("cs_paid"), nil).Once()
	productRepo.On("GetByID", int64(7)).Return(&models.BusinessProduct{ID: 7, BusinessID: 42, ProductName: "Margherita"}, nil).Once()
	visitorRepo.On("GetByEmail", "mira@example.com").
		Return(&models.VisitorAccount{ID: 5, Email: "mira@example.com"}, nil).Once()
	publisher.On("PublishOrderCreated", mock.Anything).Return(nil).Once()

	order, err := service.VerifyOrder(context.Background(), "cs_paid", "mira@example.com")

	require.NoError(t, err)
	assert.Equal(t, "cs_paid", order.StripeSessionID)
	assert.Equal(t, uint(42), order.BusinessID)
	assert.Equal(t, int64(5), order.VisitorAccountID)
	assert.Equal(t, 1, order.PaymentDone)
	assert.Equal(t, 25.50, order.OrderAmount)
	assert.Equal(t, "Mira", order.FirstName)
	assert.Equal(t, "Keller", order.LastName)
	assert.Equal(t, "Zurich", order.City)
	require.Len(t, order.Details, 2)
	assert.Equal(t, int64(7), order.Details[0].ProductID)
	assert.Equal(t, 10.00, order.Details[0].ProductPrice)
	assert.Equal(t, 2, order.Details[0].Quantity)
	assert.Equal(t, 20.00, order.Details[0].LineTotal)
	assert.False(t, order.EstimatedDelivery.IsZero())

	stored, repoErr := orderRepo.GetBySessionID("cs_paid")
	require.NoError(t, repoErr)
	require.NotNil(t, stored)
	assert.Equal(t, order.ID, stored.ID)

	stripeClient.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestVerifyOrder_IdempotentPerSession(t *testing.T) {
	service, _, productRepo, visitorRepo, stripeClient, publisher := setupCheckoutService(t)

	stripeClient.On("RetrieveSession", mock.Anything, "cs_paid").Return(paidSession("cs_paid"), nil).Once()
	productRepo.On("GetByID", int64(7)).Return(&models.BusinessProduct{ID: 7, BusinessID: 42}, nil).Once()
	visitorRepo.On("GetByEmail", "mira@example.com").
		Return(&models.VisitorAccount{ID: 5, Email: "mira@example.com"}, nil).Once()
	publisher.On("PublishOrderCreated", mock.Anything).Return(nil).Once()

	first, err := service.VerifyOrder(context.Background(), "cs_paid", "mira@example.com")
	require.NoError(t, err)

	// A repeated verification for the same session returns the stored order
	// without contacting the payment provider again
	second, err := service.VerifyOrder(context.Background(), "cs_paid", "mira@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	stripeClient.AssertNumberOfCalls(t, "RetrieveSession", 1)
	publisher.AssertNumberOfCalls(t, "PublishOrderCreated", 1)
}

func TestVerifyOrder_AnonymousPlaceholderAccount(t *testing.T) {
	service, _, productRepo, visitorRepo, stripeClient, publisher := setupCheckoutService(t)

	session := paidSession("cs_guest")
	stripeClient.On("RetrieveSession", mock.Anything, "cs_guest").Return(session, nil).Once()
	productRepo.On("GetByID", int64(7)).Return(&models.BusinessProduct{ID: 7, BusinessID: 42}, nil).Once()
	// No account exists for the placeholder email, so one is created
	visitorRepo.On("GetByEmail", mock.MatchedBy(func(email string) bool {
		return email != "mira@example.com"
	})).Return(nil, fmt.Errorf("visitor account not found")).Once()
	visitorRepo.On("Create", mock.AnythingOfType("*models.VisitorAccount")).Return(nil).Once()
	publisher.On("PublishOrderCreated", mock.Anything).Return(nil).Once()

	order, err := service.VerifyOrder(context.Background(), "cs_guest", "")

	require.NoError(t, err)
	assert.Equal(t, "cs_guest", order.StripeSessionID)
	visitorRepo.AssertExpectations(t)
}

func TestVerifyOrder_MissingSessionID(t *testing.T) {
	service, _, _, _, stripeClient, _ := setupCheckoutService(t)

	_, err := service.VerifyOrder(context.Background(), "", "")

	var validationErr *services.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	stripeClient.AssertNotCalled(t, "RetrieveSession")
}

func TestOrderHistory(t *testing.T) {
	service, orderRepo, _, _, _, _ := setupCheckoutService(t)

	require.NoError(t, orderRepo.Create(&models.Order{ID: 1, VisitorAccountID: 5, StripeSessionID: "cs_a"}))
	require.NoError(t, orderRepo.Create(&models.Order{ID: 2, VisitorAccountID: 5, StripeSessionID: "cs_b"}))
	require.NoError(t, orderRepo.Create(&models.Order{ID: 3, VisitorAccountID: 9, StripeSessionID: "cs_c"}))

	orders, err := service.OrderHistory(5)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
