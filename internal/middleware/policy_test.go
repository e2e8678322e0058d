package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/pizza-admin-api/internal/auth"
	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret-key-32-characters")

var testValidatorConfig = auth.ValidatorConfig{
	Issuer:    "https://pizza42.example.com/",
	Audience:  "https://api.pizza42.example.com",
	RoleClaim: auth.DefaultRoleClaim,
}

// countingValidator records how often the policy engine consulted it
type countingValidator struct {
	inner auth.TokenValidator
	calls int
}

func (v *countingValidator) Validate(ctx context.Context, token string) (*auth.Claims, error) {
	v.calls++
	return v.inner.Validate(ctx, token)
}

func newTestValidator() *countingValidator {
	return &countingValidator{inner: auth.NewHMACValidator(testSecret, testValidatorConfig)}
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.NewDevTokenIssuer(testSecret, testValidatorConfig).Token("auth0|123", "Luigi", role)
	require.NoError(t, err)
	return token
}

func newPolicyRouter(tier Tier, validator auth.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/resource", Authorize(tier, validator), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		subject := ""
		if ok {
			subject = claims.Subject
		}
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})
	return router
}

func TestAuthorize(t *testing.T) {
	employee := tokenFor(t, auth.EmployeeRole)
	customer := tokenFor(t, "Customer")
	noRole := tokenFor(t, "")

	testCases := []struct {
		name          string
		tier          Tier
		authorization string
		expectedCode  int
	}{
		{name: "public without token", tier: TierPublic, expectedCode: http.StatusOK},
		{name: "public with garbage token", tier: TierPublic, authorization: "Bearer garbage", expectedCode: http.StatusOK},
		{name: "authenticated without token", tier: TierAuthenticated, expectedCode: http.StatusUnauthorized},
		{name: "authenticated with invalid token", tier: TierAuthenticated, authorization: "Bearer garbage", expectedCode: http.StatusUnauthorized},
		{name: "authenticated with any role", tier: TierAuthenticated, authorization: "Bearer " + customer, expectedCode: http.StatusOK},
		{name: "authenticated without role", tier: TierAuthenticated, authorization: "Bearer " + noRole, expectedCode: http.StatusOK},
		{name: "employee-only without token", tier: TierEmployeeOnly, expectedCode: http.StatusUnauthorized},
		{name: "employee-only with wrong scheme", tier: TierEmployeeOnly, authorization: "Basic " + employee, expectedCode: http.StatusUnauthorized},
		{name: "employee-only with customer", tier: TierEmployeeOnly, authorization: "Bearer " + customer, expectedCode: http.StatusForbidden},
		{name: "employee-only without role", tier: TierEmployeeOnly, authorization: "Bearer " + noRole, expectedCode: http.StatusForbidden},
		{name: "employee-only with employee", tier: TierEmployeeOnly, authorization: "Bearer " + employee, expectedCode: http.StatusOK},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			router := newPolicyRouter(tt.tier, newTestValidator())

			req := httptest.NewRequest(http.MethodGet, "/resource", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			switch tt.expectedCode {
			case http.StatusUnauthorized:
				assert.Contains(t, w.Body.String(), models.MsgUnauthenticated)
			case http.StatusForbidden:
				assert.Contains(t, w.Body.String(), models.MsgForbidden)
			}
		})
	}
}

func TestAuthorize_PublicSkipsValidation(t *testing.T) {
	validator := newTestValidator()
	router := newPolicyRouter(TierPublic, validator)

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, auth.EmployeeRole))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, validator.calls)
	assert.JSONEq(t, `{"subject":""}`, w.Body.String(), "public routes carry no identity")
}

func TestAuthorize_StoresClaims(t *testing.T) {
	router := newPolicyRouter(TierEmployeeOnly, newTestValidator())

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, auth.EmployeeRole))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"subject":"auth0|123"}`, w.Body.String())
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "public", TierPublic.String())
	assert.Equal(t, "authenticated", TierAuthenticated.String())
	assert.Equal(t, "employee_only", TierEmployeeOnly.String())
	assert.Equal(t, "unknown", Tier(42).String())
}
