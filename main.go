package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MiqayaMahmood/foodeez-0909/internal/config"
	"github.com/MiqayaMahmood/foodeez-0909/internal/handlers"
	"github.com/MiqayaMahmood/foodeez-0909/internal/middleware"
	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/repositories"
	"github.com/MiqayaMahmood/foodeez-0909/internal/services"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/cache"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/events"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/googleplaces"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/stripe"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := openDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Existence cache (Redis with in-memory fallback) ---
	var existence cache.ExistenceCache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisAddr)
		if err != nil {
			log.Printf("Redis unavailable (%v), using in-memory cache", err)
			existence = cache.NewMemoryCache()
		} else {
			defer redisCache.Close()
			existence = redisCache
		}
	} else {
		existence = cache.NewMemoryCache()
	}

	// --- Order events (optional) ---
	var publisher services.OrderEventPublisher
	var eventsClient *events.Client
	if cfg.RabbitMQURL != "" {
		eventsClient, err = events.NewClient(events.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("RabbitMQ unavailable (%v), order events disabled", err)
		} else {
			defer eventsClient.Close()
			publisher = eventsClient
		}
	}

	app, _ := newApp(cfg, db, existence, publisher)

	// --- Order event consumer ---
	if eventsClient != nil {
		go func() {
			log.Println("Starting order event consumer...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Received order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if err := eventsClient.ConsumeOrderEvents(handler); err != nil {
				log.Printf("Failed to start order event consumer: %v", err)
			}
		}()
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// newApp wires repositories, services and handlers into a Fiber app. Split
// out of main so tests can build the full route tree against their own
// database and cache.
func newApp(cfg config.Config, db *gorm.DB, existence cache.ExistenceCache, publisher services.OrderEventPublisher) (*fiber.App, *services.AuthService) {
	// --- Repositories ---
	businessRepo := repositories.NewGORMBusinessRepository(db)
	placeCacheRepo := repositories.NewGORMPlaceCacheRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	visitorRepo := repositories.NewGORMVisitorRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	journeyRepo := repositories.NewGORMJourneyRepository(db)

	// --- External clients ---
	placesClient := googleplaces.NewClient(googleplaces.Config{APIKey: cfg.GoogleMapsAPIKey})
	stripeClient := stripe.NewClient(stripe.Config{SecretKey: cfg.StripeSecretKey})

	// --- Services ---
	placeDataService := services.NewPlaceDataService(businessRepo, placeCacheRepo, placesClient, existence)
	checkoutService := services.NewCheckoutService(orderRepo, productRepo, visitorRepo, stripeClient, publisher, cfg.CheckoutOrigin)
	productService := services.NewProductService(productRepo)
	reviewService := services.NewReviewService(reviewRepo)
	journeyService := services.NewJourneyService(journeyRepo, visitorRepo)
	authService := services.NewAuthService(visitorRepo, cfg.JWTSecret)

	// --- Handlers ---
	placeDataHandler := handlers.NewPlaceDataHandler(placeDataService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	productHandler := handlers.NewProductHandler(productService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	journeyHandler := handlers.NewJourneyHandler(journeyService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()
	app.Use(logger.New())

	auth := middleware.AuthRequired(authService)
	optionalAuth := middleware.OptionalAuth(authService)

	apiV1 := app.Group("/api/v1")
	placeDataHandler.RegisterRoutes(apiV1, auth)
	checkoutHandler.RegisterRoutes(apiV1, auth, optionalAuth)
	productHandler.RegisterRoutes(apiV1, auth)
	reviewHandler.RegisterRoutes(apiV1, auth)
	journeyHandler.RegisterRoutes(apiV1, auth)
	authHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, authService
}

// openDatabase opens Postgres when a URL is configured and falls back to a
// local SQLite file for development.
func openDatabase(databaseURL string) (*gorm.DB, error) {
	if databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}
	log.Println("DATABASE_URL not set, using local SQLite database")
	return gorm.Open(sqlite.Open("foodeez.db"), &gorm.Config{})
}
