package database

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultSQLitePath is used when the sqlite driver is selected without a URL
const DefaultSQLitePath = "pizza_admin.sqlite"

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URL is the connection string: a postgres URL or keyword/value DSN,
	// or a file path for sqlite
	URL string

	// Connection pool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URL: %s, MaxOpenConns: %d, MaxIdleConns: %d, ConnMaxLifetime: %s}",
		c.NormalizedDriver(), MaskURL(c.URL), c.MaxOpenConns, c.MaxIdleConns, c.ConnMaxLifetime)
}

// NormalizedDriver maps driver aliases onto the supported names
func (c *DatabaseConfig) NormalizedDriver() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql", "pgx":
		return DriverPostgres
	case "sqlite", "sqlite3", "":
		return DriverSQLite
	default:
		return strings.ToLower(c.Driver)
	}
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.NormalizedDriver() {
	case DriverPostgres:
		return c.URL
	case DriverSQLite:
		if c.URL == "" {
			return DefaultSQLitePath
		}
		return c.URL
	default:
		return ""
	}
}

// MaskURL replaces the password of a connection URL with [REDACTED]
func MaskURL(dbURL string) string {
	if dbURL == "" || !strings.Contains(dbURL, "://") {
		return dbURL
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}
