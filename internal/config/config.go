package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
	Site     SiteConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
	CompanyName    string
}

// PayrollConfig holds overrides for the pay policy.
type PayrollConfig struct {
	EnforceBalanceFloor bool
}

// SiteConfig is the work site used for geofence checks.
type SiteConfig struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "pointage"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
		CompanyName:    getEnv("COMPANY_NAME", "KL Beton"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Payroll configuration
	config.Payroll = PayrollConfig{
		EnforceBalanceFloor: getEnv("PAYROLL_ENFORCE_BALANCE_FLOOR", "false") == "true",
	}

	// Geofence site
	siteLat, err := strconv.ParseFloat(getEnv("SITE_LATITUDE", "36.8065"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_LATITUDE: %w", err)
	}
	siteLon, err := strconv.ParseFloat(getEnv("SITE_LONGITUDE", "10.1815"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_LONGITUDE: %w", err)
	}
	siteRadius, err := strconv.ParseFloat(getEnv("SITE_RADIUS_METERS", "500"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_RADIUS_METERS: %w", err)
	}
	config.Site = SiteConfig{
		Latitude:     siteLat,
		Longitude:    siteLon,
		RadiusMeters: siteRadius,
	}

	return config, nil
}

// DatabaseURL builds the pgx connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
