package config

import (
	"github.com/spf13/viper"
)

// Config holds the runtime configuration, collected from environment
// variables with sensible local-development defaults.
type Config struct {
	AppPort          string
	DatabaseURL      string
	GoogleMapsAPIKey string
	StripeSecretKey  string
	CheckoutOrigin   string
	RedisAddr        string
	RabbitMQURL      string
	JWTSecret        string
}

// Load reads the configuration from environment variables via Viper.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("GOOGLE_MAPS_API_KEY", "")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("CHECKOUT_ORIGIN", "http://localhost:3000")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.AutomaticEnv()

	return Config{
		AppPort:          viper.GetString("APP_PORT"),
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		GoogleMapsAPIKey: viper.GetString("GOOGLE_MAPS_API_KEY"),
		StripeSecretKey:  viper.GetString("STRIPE_SECRET_KEY"),
		CheckoutOrigin:   viper.GetString("CHECKOUT_ORIGIN"),
		RedisAddr:        viper.GetString("REDIS_ADDR"),
		RabbitMQURL:      viper.GetString("RABBITMQ_URL"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
	}
}
