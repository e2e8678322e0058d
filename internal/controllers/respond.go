package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"github.com/franciscosanchezn/pizza-admin-api/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps a store adapter error onto an HTTP status. A missing
// entity is 404, an expired request deadline is 504, any other failure is 500.
func respondError(ctx *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(notFoundMessage))
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Request.Context().Err(), context.DeadlineExceeded):
		ctx.JSON(http.StatusGatewayTimeout, models.NewErrorResponse(models.MsgTimeout))
	default:
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgInternal))
	}
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(message))
}
