package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MiqayaMahmood/foodeez-0909/internal/config"
	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/cache"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Business{},
		&models.BusinessGoogleReview{},
		&models.BusinessOpeningHours{},
		&models.BusinessGoogleImage{},
		&models.BusinessProduct{},
		&models.Order{},
		&models.OrderDetail{},
		&models.VisitorAccount{},
		&models.VisitorBusinessReview{},
		&models.VisitorFoodJourney{},
	)
	require.NoError(t, err)

	cfg := config.Config{
		AppPort:        ":8081",
		CheckoutOrigin: "http://localhost:3000",
		JWTSecret:      "test_jwt_secret",
	}
	app, _ := newApp(cfg, db, cache.NewMemoryCache(), nil)
	return app
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/orders/history"},
		{http.MethodPost, "/api/v1/reviews/"},
		{http.MethodPost, "/api/v1/food-journey/"},
		{http.MethodDelete, "/api/v1/reviews/1"},
	}
	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s should require auth", route.method, route.path)
	}
}

func TestPublicRoutesAreOpen(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/food-journey/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
