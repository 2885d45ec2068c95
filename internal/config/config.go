package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode   string
	Port      string
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Admin     AdminSeedConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SQLitePath string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// RateLimitConfig holds per-IP request limits (per minute)
type RateLimitConfig struct {
	General int
	Auth    int
}

// AdminSeedConfig describes the admin account created on first start
type AdminSeedConfig struct {
	Name     string
	Username string
	Password string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	database, err := loadDatabaseConfig(appMode)
	if err != nil {
		return nil, err
	}

	jwtCfg, err := loadJWTConfig(appMode)
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode:   appMode,
		Port:      getEnv("PORT", "5000"),
		Database:  database,
		JWT:       jwtCfg,
		RateLimit: loadRateLimitConfig(),
		Admin:     loadAdminSeedConfig(appMode),
	}

	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) (DatabaseConfig, error) {
	prefix := modePrefix(mode)

	driver := strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", "mysql")))
	defaultPort := "3306"
	switch driver {
	case "mysql":
	case "postgres":
		defaultPort = "5432"
	case "sqlite":
	default:
		return DatabaseConfig{}, fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql', 'postgres' or 'sqlite')", driver)
	}

	return DatabaseConfig{
		Driver:     driver,
		Host:       getEnv(prefix+"DB_HOST", "localhost"),
		Port:       getEnv(prefix+"DB_PORT", defaultPort),
		User:       getEnv(prefix+"DB_USER", "root"),
		Password:   getEnv(prefix+"DB_PASS", ""),
		DBName:     getEnv(prefix+"DB_NAME", "trichygold_order"),
		SQLitePath: getEnv("SQLITE_PATH", "trichygold-order.db"),
	}, nil
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) (JWTConfig, error) {
	prefix := modePrefix(mode)

	secret := getEnv(prefix+"JWT_SECRET", "")
	if secret == "" {
		if mode == "prod" {
			return JWTConfig{}, fmt.Errorf("%sJWT_SECRET is required in prod mode", prefix)
		}
		secret = "trichygold-dev-temporary-secret-key"
		log.Println("Warning: using default JWT secret, not suitable for production")
	}

	return JWTConfig{
		Secret:   secret,
		TokenTTL: time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
	}, nil
}

// loadRateLimitConfig loads per-minute request limits
func loadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		General: getEnvInt("RATE_LIMIT", 100),
		Auth:    getEnvInt("AUTH_RATE_LIMIT", 5),
	}
}

// loadAdminSeedConfig loads the bootstrap admin account.
// In prod mode no default password is provided.
func loadAdminSeedConfig(mode string) AdminSeedConfig {
	defaultPassword := ""
	if mode == "dev" {
		defaultPassword = "Track123"
	}
	return AdminSeedConfig{
		Name:     getEnv("ADMIN_NAME", "Admin"),
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Password: getEnv("ADMIN_PASSWORD", defaultPassword),
	}
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets a positive integer environment variable with default value
func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:5173"
	}
	return origins
}
