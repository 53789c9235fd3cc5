package config

import (
	"os"
	"strings"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Catalog
	CatalogPath      string
	PlaceholderImage string

	// Store identity
	StoreName    string
	StoreBaseURL string

	// Orders
	WhatsAppNumber string

	// CORS
	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		CatalogPath:      getEnv("CATALOG_PATH", "products.json"),
		PlaceholderImage: getEnv("PLACEHOLDER_IMAGE", "static/images/placeholder.jpg"),

		StoreName:    getEnv("STORE_NAME", "PSJ Priya'z Style Jone"),
		StoreBaseURL: getEnv("STORE_BASE_URL", "http://localhost:8080"),

		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "+1234567890"),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
