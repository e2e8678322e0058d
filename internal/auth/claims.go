package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// EmployeeRole is the role claim value that grants employee-only access
const EmployeeRole = "Employee"

// DefaultRoleClaim is the namespaced claim key the identity provider uses for roles
const DefaultRoleClaim = "https://pizza42.com/role"

// Claims is the identity extracted from a validated bearer token
type Claims struct {
	Subject string `json:"subject"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

// IsEmployee reports whether the role claim is exactly "Employee".
// The comparison is case-sensitive and there is no role hierarchy.
func (c *Claims) IsEmployee() bool {
	return c != nil && c.Role == EmployeeRole
}

// claimsFromToken reads the subject, name and namespaced role claims.
// A role claim that is not a single string is treated as absent.
func claimsFromToken(mapClaims jwt.MapClaims, roleClaim string) *Claims {
	claims := &Claims{}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if role, ok := mapClaims[roleClaim].(string); ok {
		claims.Role = role
	}
	return claims
}
