package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DevTokenIssuer signs HS256 tokens shaped like the identity provider's,
// so the API can be exercised locally against NewHMACValidator.
// It is never wired into the served routes.
type DevTokenIssuer struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	Config       ValidatorConfig
	TTL          time.Duration
}

// NewDevTokenIssuer creates a new development token issuer
func NewDevTokenIssuer(secret []byte, cfg ValidatorConfig) *DevTokenIssuer {
	if cfg.RoleClaim == "" {
		cfg.RoleClaim = DefaultRoleClaim
	}
	return &DevTokenIssuer{
		SignedKey:    secret,
		SignedMethod: jwt.SigningMethodHS256,
		Config:       cfg,
		TTL:          time.Hour,
	}
}

// Token signs a token for subject with the given display name and role.
// An empty role omits the role claim entirely.
func (g *DevTokenIssuer) Token(subject, name, role string) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("cannot generate token: no subject available")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"name": name,
		"iat":  now.Unix(),
		"exp":  now.Add(g.TTL).Unix(),
	}
	if g.Config.Issuer != "" {
		claims["iss"] = g.Config.Issuer
	}
	if g.Config.Audience != "" {
		claims["aud"] = g.Config.Audience
	}
	if role != "" {
		claims[g.Config.RoleClaim] = role
	}

	token := jwt.NewWithClaims(g.SignedMethod, claims)
	signed, err := token.SignedString(g.SignedKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
