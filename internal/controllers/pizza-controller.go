package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"github.com/franciscosanchezn/pizza-admin-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// UpdatePizzaPrice sets the unit price of a pizza
	UpdatePizzaPrice(c *gin.Context)
	// UpdatePizzaSoldOut sets the sold-out flag of a pizza
	UpdatePizzaSoldOut(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get the full pizza catalog, unpaginated
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.ErrorResponse
// @Router /api/pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, models.MsgPizzaNotFound)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	pizzaID, err := parsePizzaID(ctx)
	if err != nil {
		respondBadRequest(ctx, models.MsgInvalidPizzaID)
		return
	}

	pizza, err := c.service.GetPizzaByID(ctx.Request.Context(), pizzaID)
	if err != nil {
		respondError(ctx, err, models.MsgPizzaNotFound)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// UpdatePizzaPrice godoc
// @Summary Update pizza price
// @Description Set the unit price of a pizza. The price comes from the newPrice query parameter or a bare JSON number body.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param newPrice query number false "New unit price"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/pizzas/{id}/price [put]
func (c *pizzaController) UpdatePizzaPrice(ctx *gin.Context) {
	pizzaID, err := parsePizzaID(ctx)
	if err != nil {
		respondBadRequest(ctx, models.MsgInvalidPizzaID)
		return
	}

	price, err := parsePrice(ctx, paramNewPrice)
	if err != nil {
		respondBadRequest(ctx, models.MsgInvalidPrice)
		return
	}

	pizza, err := c.service.UpdatePrice(ctx.Request.Context(), pizzaID, price)
	if err != nil {
		respondError(ctx, err, models.MsgPizzaNotFound)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// UpdatePizzaSoldOut godoc
// @Summary Update pizza sold-out flag
// @Description Mark a pizza as sold out or available. The flag comes from the soldOut query parameter or a bare JSON boolean body.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param soldOut query bool false "Sold-out flag"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/pizzas/{id}/soldout [put]
func (c *pizzaController) UpdatePizzaSoldOut(ctx *gin.Context) {
	pizzaID, err := parsePizzaID(ctx)
	if err != nil {
		respondBadRequest(ctx, models.MsgInvalidPizzaID)
		return
	}

	soldOut, err := parseBool(ctx, paramSoldOut)
	if err != nil {
		respondBadRequest(ctx, models.MsgInvalidBoolean)
		return
	}

	pizza, err := c.service.UpdateSoldOut(ctx.Request.Context(), pizzaID, soldOut)
	if err != nil {
		respondError(ctx, err, models.MsgPizzaNotFound)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}
