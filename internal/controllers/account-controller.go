package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-admin-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"github.com/gin-gonic/gin"
)

// CurrentUserResponse describes the caller as seen through their token
type CurrentUserResponse struct {
	Subject  string `json:"subject"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Employee bool   `json:"employee"`
}

// AccountController serves information about the caller's own identity
type AccountController struct{}

// NewAccountController creates a new instance of AccountController
func NewAccountController() *AccountController {
	return &AccountController{}
}

// GetCurrentUser godoc
// @Summary Current identity
// @Description Describe the authenticated caller, including whether they hold the employee role
// @Tags account
// @Produce json
// @Success 200 {object} CurrentUserResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/me [get]
func (ac *AccountController) GetCurrentUser(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NewErrorResponse(models.MsgUnauthenticated))
		return
	}

	c.JSON(http.StatusOK, CurrentUserResponse{
		Subject:  claims.Subject,
		Name:     claims.Name,
		Role:     claims.Role,
		Employee: claims.IsEmployee(),
	})
}
