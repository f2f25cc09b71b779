// Package config provides configuration management for the cinelog backend.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting: every problem found while loading is gathered
// and returned as a single error so a misconfigured deployment fails fast
// with a complete picture.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// MongoConfig holds connection settings for the document store.
type MongoConfig struct {
	URI    string // MongoDB connection string
	DBName string // database holding the users collection
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret     string        // secret key for signing session tokens
	TokenDuration time.Duration // session token lifetime; re-login after expiry
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string // port for the HTTP server
	Env  string // "development" or "production"; controls cookie attributes
}

// IsProduction reports whether the server runs in production mode.
// Production mode makes the session cookie Secure with SameSite=None so the
// browser sends it on cross-site API calls.
func (c *ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Mongo  *MongoConfig
	Auth   *AuthConfig
	Server *ServerConfig
}

// getRequiredEnv reads a required environment variable, collecting an error
// when it is missing instead of failing immediately.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv reads an environment variable with a default fallback.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvDuration reads an environment variable parsed as a
// time.Duration ("15m", "168h", ...). Parsing failures are collected and the
// default is kept.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Document store configuration.
	mongoURI := getRequiredEnv("MONGO_URI", &errors)
	dbName := getOptionalEnv("DB_NAME", "cinelog")

	mongoConfig := &MongoConfig{
		URI:    mongoURI,
		DBName: dbName,
	}

	// Auth configuration. Sessions last 7 days by default; there is no
	// refresh mechanism, so expiry forces a re-login.
	jwtSecret := getRequiredEnv("JWT_SECRET", &errors)
	tokenDuration := getOptionalEnvDuration("JWT_TOKEN_DURATION", 168*time.Hour, &errors)

	authConfig := &AuthConfig{
		JWTSecret:     jwtSecret,
		TokenDuration: tokenDuration,
	}

	// Server configuration.
	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "8080"),
		Env:  getOptionalEnv("APP_ENV", "development"),
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Mongo:  mongoConfig,
		Auth:   authConfig,
		Server: serverConfig,
	}, nil
}
