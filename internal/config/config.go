package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Advisor  AdvisorConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret               string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	Issuer               string
}

type AdvisorConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type SecurityConfig struct {
	BCryptCost         int
	RateLimitPerSecond int
	PasswordMinLength  int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "budgetwise_user"),
			Password:        getEnv("DB_PASSWORD", "budgetwise_password"),
			Name:            getEnv("DB_NAME", "budgetwise_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			AccessTokenDuration:  getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 24*time.Hour),
			RefreshTokenDuration: getDurationEnv("JWT_REFRESH_TOKEN_DURATION", 7*24*time.Hour),
			Issuer:               getEnv("JWT_ISSUER", "budgetwise-api"),
		},
		Advisor: AdvisorConfig{
			BaseURL: getEnv("ADVISOR_BASE_URL", "http://localhost:9090"),
			APIKey:  getEnv("ADVISOR_API_KEY", ""),
			Timeout: getDurationEnv("ADVISOR_TIMEOUT", 30*time.Second),
		},
		Security: SecurityConfig{
			BCryptCost:         getIntEnv("BCRYPT_COST", 12),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			PasswordMinLength:  getIntEnv("PASSWORD_MIN_LENGTH", 8),
		},
	}

	config.JWT.Secret = loadJWTSecret(config)

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// loadJWTSecret loads the HMAC signing secret for JWTs.
// Production requires an explicit secret; development and testing fall back
// to a fixed local secret so tokens survive restarts.
func loadJWTSecret(c *Config) string {
	secret := os.Getenv("JWT_SECRET")
	if secret != "" {
		return secret
	}

	if c.IsProduction() {
		log.Fatal("JWT_SECRET environment variable must be set in production environments")
	}

	log.Println("Development environment: using local default JWT secret (set JWT_SECRET to override)")
	return "budgetwise-local-development-secret"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
