package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows browser calls from the configured front-end origins only,
// with every method and request header permitted for those origins.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		// Browsers do not match Authorization against the wildcard, so it is listed.
		AllowHeaders:  []string{"*", "Authorization"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	// An empty allow-list rejects every cross-origin call.
	if len(allowedOrigins) == 0 {
		config.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(config)
}
