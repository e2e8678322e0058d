package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthController reports liveness of the service and reachability of its store
type HealthController struct {
	store   Pinger
	service string
}

// NewHealthController creates a new instance of HealthController for the named service
func NewHealthController(store Pinger, service string) *HealthController {
	return &HealthController{store: store, service: service}
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service and its store are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (hc *HealthController) HealthCheck(c *gin.Context) {
	status, database, code := "healthy", "up", http.StatusOK
	if err := hc.store.PingContext(c.Request.Context()); err != nil {
		status, database, code = "unhealthy", "down", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   hc.service,
		"database":  database,
	})
}
