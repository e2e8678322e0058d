package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/franciscosanchezn/pizza-admin-api/internal/auth"
	"github.com/franciscosanchezn/pizza-admin-api/internal/config"
	"github.com/franciscosanchezn/pizza-admin-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-admin-api/internal/database"
	"github.com/franciscosanchezn/pizza-admin-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-admin-api/internal/routes"
	"github.com/franciscosanchezn/pizza-admin-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const serviceName = "pizza-admin-api"

// shutdownTimeout bounds how long in-flight requests may run after a stop signal
const shutdownTimeout = 15 * time.Second

// @title Pizza Admin API
// @version 1.0
// @description Admin API for managing pizzas and orders
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connection
	db := setupDatabase(ctx, configuration)

	// Initialize the token validator
	validator := setupValidator(ctx, configuration)

	// Initialize Gin router
	router := setupRouter(configuration, db, validator)

	// Start the servers
	if err := serve(ctx, configuration, router); err != nil {
		log.WithError(err).Fatal("Server stopped with error")
	}
	log.Info("Server stopped")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// LOG_LEVEL, when set, overrides the environment default.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	level := config.LevelForEnvironment(environment)
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := log.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	log.SetLevel(level)
	database.SetLogLevel(level)
	middleware.SetLogLevel(level)
	services.SetLogLevel(level)

	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf.String())
	return conf
}

// setupDatabase connects to the store, brings the schema up to date and optionally seeds it
func setupDatabase(ctx context.Context, conf *config.Config) *gorm.DB {
	dbConfig := conf.Database()
	db, err := database.InitDatabase(ctx, dbConfig)
	checkPanicErr(err)

	checkPanicErr(database.PrepareSchema(db, dbConfig.NormalizedDriver()))

	if conf.SeedData {
		checkPanicErr(database.Seed(db))
	}
	return db
}

// setupValidator picks the identity provider's JWKS when a domain is configured
// and falls back to the development shared secret otherwise
func setupValidator(ctx context.Context, conf *config.Config) auth.TokenValidator {
	validatorConfig := auth.ValidatorConfig{
		Issuer:    conf.AuthIssuer,
		Audience:  conf.AuthAudience,
		RoleClaim: conf.RoleClaim,
		Leeway:    5 * time.Minute,
	}

	if conf.UsesJWKS() {
		log.WithField("auth_domain", conf.AuthDomain).Info("Validating tokens against identity provider keys")
		validator, err := auth.NewJWKSValidator(ctx, conf.AuthDomain, validatorConfig)
		checkPanicErr(err)
		return validator
	}

	log.Warn("AUTH_DOMAIN not set, validating tokens with the development shared secret")
	return auth.NewHMACValidator([]byte(conf.JWTSecret), validatorConfig)
}

// setupRouter initializes the services, controllers and the Gin router
// It returns the configured router
func setupRouter(conf *config.Config, db *gorm.DB, validator auth.TokenValidator) *gin.Engine {
	sqlDB, err := db.DB()
	checkPanicErr(err)

	deps := routes.Dependencies{
		Pizzas:    controllers.NewPizzaController(services.NewPizzaService(db)),
		Orders:    controllers.NewOrderController(services.NewOrderService(db)),
		Account:   controllers.NewAccountController(),
		Health:    controllers.NewHealthController(sqlDB, serviceName),
		Validator: validator,
	}

	return routes.NewRouter(routes.Options{
		BackendPort:    conf.BackendPort,
		AllowedOrigins: conf.AllowedOrigins,
		RequestTimeout: conf.RequestTimeout,
	}, deps)
}

type listener struct {
	name   string
	server *http.Server
	tls    bool
}

// serve runs every configured listener until ctx is cancelled or one of them fails,
// then shuts all of them down gracefully
func serve(ctx context.Context, conf *config.Config, handler http.Handler) error {
	listeners := []listener{{name: "backend", server: newServer(conf.Host, conf.BackendPort, handler)}}
	if conf.HTTPPort > 0 {
		listeners = append(listeners, listener{name: "http", server: newServer(conf.Host, conf.HTTPPort, handler)})
	}
	if conf.TLSEnabled() {
		listeners = append(listeners, listener{name: "https", server: newServer(conf.Host, conf.TLSPort, handler), tls: true})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, l := range listeners {
		g.Go(func() error {
			log.WithFields(log.Fields{
				"listener": l.name,
				"addr":     l.server.Addr,
				"tls":      l.tls,
			}).Info("Starting server")

			var err error
			if l.tls {
				err = l.server.ListenAndServeTLS(conf.TLSCertFile, conf.TLSKeyFile)
			} else {
				err = l.server.ListenAndServe()
			}
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("%s listener: %w", l.name, err)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var shutdownErr error
		for _, l := range listeners {
			if err := l.server.Shutdown(shutdownCtx); err != nil {
				shutdownErr = errors.Join(shutdownErr, fmt.Errorf("%s shutdown: %w", l.name, err))
			}
		}
		return shutdownErr
	})

	return g.Wait()
}

func newServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(host, strconv.Itoa(port)),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
