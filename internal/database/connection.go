package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns this package's logger with the application level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// retryDelays is the backoff between connection attempts; its length is the retry budget
var retryDelays = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}

// InitDatabase initializes the database connection based on the provided configuration
// It supports both PostgreSQL and SQLite drivers with automatic retry logic and connection pooling
func InitDatabase(ctx context.Context, cfg DatabaseConfig) (*gorm.DB, error) {
	driver := cfg.NormalizedDriver()

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_url":    MaskURL(cfg.URL),
	}).Info("Initializing database connection")

	dialector, err := dialectorFor(driver, cfg.DSN())
	if err != nil {
		return nil, err
	}

	maxRetries := len(retryDelays)
	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Info("Attempting database connection")

		var db *gorm.DB
		db, err = Open(ctx, dialector, cfg)
		if err == nil {
			log.WithFields(logrus.Fields{
				"db_driver": driver,
				"attempt":   attempt,
			}).Info("Database initialized successfully")
			return db, nil
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxRetries {
			delay := retryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("database connection cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	// All retries exhausted
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// Open opens a gorm session on dialector, verifies it with a ping and
// configures the connection pool. No retries.
func Open(ctx context.Context, dialector gorm.Dialector, cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get database instance")
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		log.WithError(err).Error("Failed to ping database")
		_ = sqlDB.Close()
		return nil, err
	}

	configureConnectionPool(sqlDB, cfg)
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		if dsn == "" {
			return nil, fmt.Errorf("postgres driver requires a connection URL")
		}
		log.Debug("Connecting to PostgreSQL")
		return postgres.Open(dsn), nil
	case DriverSQLite:
		log.WithField("db_path", dsn).Debug("Connecting to SQLite")
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", driver)
	}
}

// configureConnectionPool sets up connection pool parameters, falling back to
// 25 open / 5 idle / 5 minute lifetime. SQLite gets a single connection:
// it serializes writers anyway and each in-memory connection is its own database.
func configureConnectionPool(sqlDB *sql.DB, cfg DatabaseConfig) {
	maxOpen, maxIdle, lifetime := cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime
	if maxOpen <= 0 {
		maxOpen = 25
		if cfg.NormalizedDriver() == DriverSQLite {
			maxOpen = 1
		}
	}
	if maxIdle <= 0 {
		maxIdle = 5
	}
	if lifetime <= 0 {
		lifetime = 5 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)

	log.WithFields(logrus.Fields{
		"max_open_conns":    maxOpen,
		"max_idle_conns":    maxIdle,
		"conn_max_lifetime": lifetime.String(),
	}).Debug("Connection pool configured")
}
