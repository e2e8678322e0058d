package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/pizza-admin-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// DefaultAllowedOrigins are the admin front-end hosts (local dev servers and production)
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3002",
	"http://localhost:5173",
	"https://auth0-pizza42.vercel.app",
}

// Config used for the application configuration, loading the input from environment variables.
// It is built once at startup and passed to every component; nothing reads it at request time.
type Config struct {
	Environment string `json:"environment"`

	// Server Configuration
	Host        string `json:"host"`
	BackendPort int    `json:"backend_port"`
	HTTPPort    int    `json:"http_port"`
	TLSPort     int    `json:"tls_port"`
	TLSCertFile string `json:"tls_cert_file"`
	TLSKeyFile  string `json:"tls_key_file"`

	// Database configuration
	DatabaseDriver string `json:"database_driver"`
	DatabaseURL    string `json:"database_url"`
	SeedData       bool   `json:"seed_data"`

	// Identity provider configuration
	AuthDomain   string `json:"auth_domain"`
	AuthAudience string `json:"auth_audience"`
	AuthIssuer   string `json:"auth_issuer"`
	RoleClaim    string `json:"role_claim"`
	JWTSecret    string `json:"jwt_secret"`

	// HTTP behaviour
	AllowedOrigins []string      `json:"allowed_origins"`
	RequestTimeout time.Duration `json:"request_timeout"`

	// Logging configuration
	LogLevel string `json:"log_level"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Host: %s, BackendPort: %d, HTTPPort: %d, TLSPort: %d, DatabaseDriver: %s, DatabaseURL: %s, AuthDomain: %s, AuthAudience: %s, RoleClaim: %s, JWTSecret: [REDACTED], AllowedOrigins: %v, RequestTimeout: %s, LogLevel: %s}",
		c.Environment, c.Host, c.BackendPort, c.HTTPPort, c.TLSPort, c.DatabaseDriver, database.MaskURL(c.DatabaseURL),
		c.AuthDomain, c.AuthAudience, c.RoleClaim, c.AllowedOrigins, c.RequestTimeout, c.LogLevel)
}

// IsProduction reports whether the service runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesJWKS reports whether tokens are validated against the identity provider's keys
// rather than the development shared secret
func (c *Config) UsesJWKS() bool {
	return c.AuthDomain != ""
}

// TLSEnabled reports whether a direct HTTPS listener should be started
func (c *Config) TLSEnabled() bool {
	return c.TLSPort > 0 && c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// Database returns the store connection settings
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver: c.DatabaseDriver,
		URL:    c.DatabaseURL,
	}
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any required environment variable is missing or invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	backendPort, err := portFromEnv("BACKEND_PORT", "8080")
	if err != nil {
		return nil, err
	}
	httpPort, err := portFromEnv("HTTP_PORT", "0")
	if err != nil {
		return nil, err
	}
	tlsPort, err := portFromEnv("TLS_PORT", "0")
	if err != nil {
		return nil, err
	}
	timeout, err := time.ParseDuration(GetEnvWithDefault("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	config := &Config{
		Environment:    GetEnvWithDefault("APP_ENV", "development"),
		Host:           GetEnvWithDefault("APP_HOST", ""),
		BackendPort:    backendPort,
		HTTPPort:       httpPort,
		TLSPort:        tlsPort,
		TLSCertFile:    GetEnvWithDefault("TLS_CERT_FILE", ""),
		TLSKeyFile:     GetEnvWithDefault("TLS_KEY_FILE", ""),
		DatabaseDriver: strings.ToLower(GetEnvWithDefault("DATABASE_DRIVER", "sqlite")),
		DatabaseURL:    GetEnvWithDefault("DATABASE_URL", ""),
		SeedData:       GetEnvAsType("SEED_DATA", false),
		AuthDomain:     GetEnvWithDefault("AUTH_DOMAIN", ""),
		AuthAudience:   GetEnvWithDefault("AUTH_AUDIENCE", ""),
		AuthIssuer:     GetEnvWithDefault("AUTH_ISSUER", ""),
		RoleClaim:      GetEnvWithDefault("AUTH_ROLE_CLAIM", "https://pizza42.com/role"),
		JWTSecret:      GetEnvWithDefault("JWT_SECRET", ""),
		AllowedOrigins: GetEnvAsType("CORS_ALLOWED_ORIGINS", DefaultAllowedOrigins),
		RequestTimeout: timeout,
		LogLevel:       GetEnvWithDefault("LOG_LEVEL", "info"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Validate checks the cross-field rules LoadConfig cannot express per variable
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case "postgres", "postgresql":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL environment variable is required for the postgres driver")
		}
		if strings.Contains(c.DatabaseURL, "://") {
			if _, err := url.ParseRequestURI(c.DatabaseURL); err != nil {
				return fmt.Errorf("invalid DATABASE_URL format: %w", err)
			}
		}
	case "sqlite", "sqlite3":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (supported: postgres, sqlite)", c.DatabaseDriver)
	}

	if c.AuthDomain == "" && c.JWTSecret == "" {
		return errors.New("either AUTH_DOMAIN or JWT_SECRET must be set")
	}
	if c.IsProduction() && (c.AuthDomain == "" || c.AuthAudience == "") {
		return errors.New("AUTH_DOMAIN and AUTH_AUDIENCE are required in production")
	}
	if c.RoleClaim == "" {
		return errors.New("AUTH_ROLE_CLAIM must not be empty")
	}

	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}
	if c.TLSPort > 0 && c.TLSCertFile == "" {
		return errors.New("TLS_PORT requires TLS_CERT_FILE and TLS_KEY_FILE")
	}
	if c.HTTPPort != 0 && c.HTTPPort == c.BackendPort {
		return errors.New("HTTP_PORT must differ from BACKEND_PORT")
	}
	if c.TLSPort != 0 && c.TLSPort == c.BackendPort {
		return errors.New("TLS_PORT must differ from BACKEND_PORT")
	}

	for _, origin := range c.AllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS origin %q: must start with http:// or https://", origin)
		}
	}

	if c.RequestTimeout < 0 {
		return errors.New("REQUEST_TIMEOUT must not be negative")
	}
	return nil
}

// LevelForEnvironment maps APP_ENV onto a log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

func portFromEnv(key, defaultValue string) (int, error) {
	port, err := strconv.Atoi(GetEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("invalid %s: %d is out of range", key, port)
	}
	return port, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	case []string:
		var items []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return any(items).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
