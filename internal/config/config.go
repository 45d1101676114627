package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageSQLite   = "sqlite"
)

type Config struct {
	AppEnv  string
	AppPort string

	// Shopify Storefront API
	StoreDomain     string
	StorefrontToken string
	APIVersion      string
	CatalogLimit    int

	// Resend
	ResendAPIKey string
	EmailFrom    string
	EmailAdmin   string

	// Shopper state persistence
	StorageBackend string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	RedisURL       string
	RedisTTLHours  int
	SQLitePath     string

	ShopperTokenSecret string
	AllowedOrigin      string
	InternalSecretKey  string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:             os.Getenv("APP_ENV"),
		AppPort:            getenv("APP_PORT", "8080"),
		StoreDomain:        os.Getenv("SHOPIFY_STORE_DOMAIN"),
		StorefrontToken:    os.Getenv("SHOPIFY_STOREFRONT_TOKEN"),
		APIVersion:         getenv("SHOPIFY_API_VERSION", "2025-07"),
		CatalogLimit:       getenvInt("CATALOG_LIMIT", 50),
		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		EmailFrom:          getenv("EMAIL_FROM", "Priyasi <onboarding@resend.dev>"),
		EmailAdmin:         getenv("EMAIL_ADMIN", "onboarding@resend.dev"),
		StorageBackend:     strings.ToLower(getenv("STORAGE_BACKEND", StorageMemory)),
		DBHost:             os.Getenv("DB_HOST"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBPort:             os.Getenv("DB_PORT"),
		RedisURL:           getenv("REDIS_URL", "redis://localhost:6379"),
		RedisTTLHours:      getenvInt("REDIS_TTL_HOURS", 24*30),
		SQLitePath:         getenv("SQLITE_PATH", "priyasi.db"),
		ShopperTokenSecret: os.Getenv("SHOPPER_TOKEN_SECRET"),
		AllowedOrigin:      getenv("ALLOWED_ORIGIN", "*"),
		InternalSecretKey:  os.Getenv("INTERNAL_SECRET_KEY"),
	}

	if cfg.StoreDomain == "" {
		log.Fatal("SHOPIFY_STORE_DOMAIN is not set")
	}

	if cfg.StorageBackend == StoragePostgres && cfg.DBHost == "" {
		log.Fatal("STORAGE_BACKEND=postgres requires DB_HOST")
	}

	return cfg
}

// LoadDatabaseConfig reads only the Postgres settings. It is for tools such as
// the migration runner that do not talk to the storefront.
func LoadDatabaseConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenv("DB_PORT", "5432"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
