package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"github.com/franciscosanchezn/pizza-admin-api/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// GetRecentOrders retrieves the 25 most recent orders
	GetRecentOrders(c *gin.Context)
	// GetOrderByID retrieves an order by its ID
	GetOrderByID(c *gin.Context)
	// UpdateOrderStatus sets the status of an order
	UpdateOrderStatus(c *gin.Context)
	// UpdateOrderPriority sets the priority flag of an order
	UpdateOrderPriority(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// GetRecentOrders godoc
// @Summary Get recent orders
// @Description Get the 25 most recent orders, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/orders [get]
func (c *orderController) GetRecentOrders(ctx *gin.Context) {
	orders, err := c.service.GetRecentOrders(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.MsgOrderNotFound)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get a single order by its ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/orders/{id} [get]
func (c *orderController) GetOrderByID(ctx *gin.Context) {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		respondBadRequest(ctx, models.MsgInvalidOrderID)
		return
	}

	order, err := c.service.GetOrderByID(ctx.Request.Context(), orderID)
	if err != nil {
		respondError(ctx, err, models.MsgOrderNotFound)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Set the free-form status of an order. The status comes from the newStatus query parameter or a bare JSON string body.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param newStatus query string false "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/orders/{id}/status [put]
func (c *orderController) UpdateOrderStatus(ctx *gin.Context) {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		respondBadRequest(ctx, models.MsgInvalidOrderID)
		return
	}

	status, err := parseStatus(ctx, paramNewStatus)
	if err != nil {
		respondBadRequest(ctx, models.MsgInvalidStatus)
		return
	}

	order, err := c.service.UpdateStatus(ctx.Request.Context(), orderID, status)
	if err != nil {
		respondError(ctx, err, models.MsgOrderNotFound)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// UpdateOrderPriority godoc
// @Summary Update order priority
// @Description Flag or unflag an order as priority. The flag comes from the priority query parameter or a bare JSON boolean body.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param priority query bool false "Priority flag"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/orders/{id}/priority [put]
func (c *orderController) UpdateOrderPriority(ctx *gin.Context) {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		respondBadRequest(ctx, models.MsgInvalidOrderID)
		return
	}

	priority, err := parseBool(ctx, paramPriority)
	if err != nil {
		respondBadRequest(ctx, models.MsgInvalidBoolean)
		return
	}

	order, err := c.service.UpdatePriority(ctx.Request.Context(), orderID, priority)
	if err != nil {
		respondError(ctx, err, models.MsgOrderNotFound)
		return
	}
	ctx.JSON(http.StatusOK, order)
}
