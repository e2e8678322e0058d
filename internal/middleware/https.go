package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Decision is the outcome of the transport security gate
type Decision int

const (
	// Allow lets the request continue down the chain
	Allow Decision = iota
	// Redirect sends the client to the HTTPS origin
	Redirect
)

// GateRequest holds everything the gate looks at
type GateRequest struct {
	Port       int
	Secure     bool
	Host       string
	RequestURI string
}

// Decide applies the gate rules. Traffic on the backend port is always
// allowed, because the upstream gateway terminates TLS and forwards
// plaintext there. Everything else must already be HTTPS.
func Decide(backendPort int, req GateRequest) Decision {
	if req.Port == backendPort {
		return Allow
	}
	if !req.Secure {
		return Redirect
	}
	return Allow
}

// RedirectTarget builds the HTTPS URL on the canonical port 443 for the
// same host, path and query string.
func RedirectTarget(req GateRequest) string {
	return "https://" + hostWithoutPort(req.Host) + req.RequestURI
}

// HTTPSRedirect is the transport security gate. It must be installed
// before any other middleware so redirected requests never reach auth.
// Redirects end the chain before the access log, so they are logged here.
func HTTPSRedirect(backendPort int) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := GateRequest{
			Port:       destinationPort(c.Request),
			Secure:     c.Request.TLS != nil,
			Host:       c.Request.Host,
			RequestURI: c.Request.URL.RequestURI(),
		}
		if Decide(backendPort, req) == Allow {
			c.Next()
			return
		}

		target := RedirectTarget(req)
		log.WithFields(logrus.Fields{
			"port":   req.Port,
			"host":   req.Host,
			"target": target,
		}).Info("Redirecting plaintext request to HTTPS")
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// destinationPort prefers the local listener address the request arrived on
// and falls back to the port in the Host header.
func destinationPort(r *http.Request) int {
	if addr, ok := r.Context().Value(http.LocalAddrContextKey).(net.Addr); ok {
		if tcp, ok := addr.(*net.TCPAddr); ok {
			return tcp.Port
		}
	}
	_, port, err := net.SplitHostPort(r.Host)
	if err != nil {
		return 0
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return 0
	}
	return p
}

func hostWithoutPort(host string) string {
	h, _, err := net.SplitHostPort(host)
	if err != nil {
		return host
	}
	if strings.Contains(h, ":") {
		return "[" + h + "]"
	}
	return h
}
