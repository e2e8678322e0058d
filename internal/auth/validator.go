package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken is returned when no bearer token was presented
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken is returned when the token fails signature, issuer, audience or expiry checks
	ErrInvalidToken = errors.New("invalid bearer token")
)

// TokenValidator turns a raw bearer token into a claim set
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*Claims, error)
}

// ValidatorConfig carries the identity provider settings shared by every validator
type ValidatorConfig struct {
	// Issuer is the expected "iss" claim, e.g. https://tenant.auth0.com/
	Issuer string
	// Audience is the expected "aud" claim, the API identifier
	Audience string
	// RoleClaim is the namespaced claim key holding the caller's role
	RoleClaim string
	// Leeway tolerates small clock skew on exp/nbf/iat
	Leeway time.Duration
}

// JWTValidator validates tokens with golang-jwt against a key source.
// Signature, issuer, audience and expiry are all enforced by the parser.
type JWTValidator struct {
	keyFunc jwt.Keyfunc
	parser  *jwt.Parser
	config  ValidatorConfig
}

func newJWTValidator(keyFunc jwt.Keyfunc, methods []string, cfg ValidatorConfig) *JWTValidator {
	if cfg.RoleClaim == "" {
		cfg.RoleClaim = DefaultRoleClaim
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	return &JWTValidator{
		keyFunc: keyFunc,
		parser:  jwt.NewParser(opts...),
		config:  cfg,
	}
}

// NewJWKSValidator validates RS256 tokens issued by the identity provider at domain,
// fetching (and periodically refreshing) its signing keys from the JWKS endpoint.
func NewJWKSValidator(ctx context.Context, domain string, cfg ValidatorConfig) (*JWTValidator, error) {
	if cfg.Issuer == "" {
		cfg.Issuer = IssuerForDomain(domain)
	}
	keys, err := keyfunc.NewDefaultCtx(ctx, []string{JWKSURLForDomain(domain)})
	if err != nil {
		return nil, fmt.Errorf("failed to load signing keys for %s: %w", domain, err)
	}
	return newJWTValidator(keys.Keyfunc, []string{jwt.SigningMethodRS256.Alg()}, cfg), nil
}

// NewHMACValidator validates HS256 tokens signed with a shared secret.
// Intended for local development and tests only.
func NewHMACValidator(secret []byte, cfg ValidatorConfig) *JWTValidator {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		// Guard against algorithm confusion: only HMAC keys are acceptable here.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}
	return newJWTValidator(keyFunc, []string{jwt.SigningMethodHS256.Alg()}, cfg)
}

// Validate parses the token and returns its claims
func (v *JWTValidator) Validate(ctx context.Context, token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	mapClaims := jwt.MapClaims{}
	parsed, err := v.parser.ParseWithClaims(token, mapClaims, v.keyFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claimsFromToken(mapClaims, v.config.RoleClaim), nil
}

// IssuerForDomain builds the issuer URL an identity provider domain signs with
func IssuerForDomain(domain string) string {
	return "https://" + strings.TrimSuffix(trimScheme(domain), "/") + "/"
}

// JWKSURLForDomain builds the well-known JWKS location for an identity provider domain
func JWKSURLForDomain(domain string) string {
	return IssuerForDomain(domain) + ".well-known/jwks.json"
}

func trimScheme(domain string) string {
	domain = strings.TrimPrefix(domain, "https://")
	return strings.TrimPrefix(domain, "http://")
}

// BearerToken extracts the token from an Authorization header value.
// It returns an empty string when the header is absent or not a Bearer credential.
func BearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
