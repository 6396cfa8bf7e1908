package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// ShopifyConfig holds the upstream GraphQL Admin API settings.
type ShopifyConfig struct {
	// ShopName is the shop host, e.g. "my-shop.myshopify.com".
	ShopName    string
	AccessToken string
	TimeoutSec  int
}

// Validate reports which required upstream settings are missing.
func (c ShopifyConfig) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ShopName) == "" {
		errs = append(errs, errors.New("SHOPIFY_SHOP_NAME is required"))
	}
	if strings.TrimSpace(c.AccessToken) == "" {
		errs = append(errs, errors.New("SHOPIFY_ACCESS_TOKEN is required"))
	}
	return errors.Join(errs...)
}

// Timeout returns the upstream HTTP timeout; zero means no timeout.
func (c ShopifyConfig) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost        string
	Port           string
	Timezone       string
	AllowOrigins   string
	SwaggerEnabled bool
	Shopify        ShopifyConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		Port:           getEnv("PORT", "8080"),
		Timezone:       getEnv("APP_TIMEZONE", "Europe/Istanbul"),
		AllowOrigins:   getEnv("CORS_ALLOW_ORIGINS", "*"),
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),
		Shopify: ShopifyConfig{
			ShopName:    getEnv("SHOPIFY_SHOP_NAME", ""),
			AccessToken: getEnv("SHOPIFY_ACCESS_TOKEN", ""),
			TimeoutSec:  getEnvInt("SHOPIFY_TIMEOUT_SEC", 15),
		},
	}
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
