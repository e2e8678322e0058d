package routes

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/pizza-admin-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-admin-api/internal/auth"
	"github.com/franciscosanchezn/pizza-admin-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-admin-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// APIPrefix is the common path prefix of both resource families
const APIPrefix = "/api"

// Route binds a verb and path to a handler and the tier it requires.
// Tiers are fixed here in code and never read from configuration.
type Route struct {
	Name    string
	Method  string
	Path    string
	Tier    middleware.Tier
	Handler gin.HandlerFunc
}

// Dependencies are the handlers and the token validator the routes need
type Dependencies struct {
	Pizzas    controllers.PizzaController
	Orders    controllers.OrderController
	Account   *controllers.AccountController
	Health    *controllers.HealthController
	Validator auth.TokenValidator
}

// Options are the transport settings of the router
type Options struct {
	BackendPort    int
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Table returns the complete route table. Catalog reads are public,
// every mutation and every order operation is employee-only.
func Table(d Dependencies) []Route {
	return []Route{
		{Name: "HealthCheck", Method: http.MethodGet, Path: "/health", Tier: middleware.TierPublic, Handler: d.Health.HealthCheck},
		{Name: "SwaggerUI", Method: http.MethodGet, Path: "/swagger/*any", Tier: middleware.TierPublic, Handler: ginSwagger.WrapHandler(swaggerFiles.Handler)},
		{Name: "GetCurrentUser", Method: http.MethodGet, Path: APIPrefix + "/me", Tier: middleware.TierAuthenticated, Handler: d.Account.GetCurrentUser},

		// Pizza routes
		{Name: "GetAllPizzas", Method: http.MethodGet, Path: APIPrefix + "/pizzas", Tier: middleware.TierPublic, Handler: d.Pizzas.GetAllPizzas},
		{Name: "GetPizzaById", Method: http.MethodGet, Path: APIPrefix + "/pizzas/:id", Tier: middleware.TierPublic, Handler: d.Pizzas.GetPizzaByID},
		{Name: "UpdatePizzaPrice", Method: http.MethodPut, Path: APIPrefix + "/pizzas/:id/price", Tier: middleware.TierEmployeeOnly, Handler: d.Pizzas.UpdatePizzaPrice},
		{Name: "UpdatePizzaSoldOutStatus", Method: http.MethodPut, Path: APIPrefix + "/pizzas/:id/soldout", Tier: middleware.TierEmployeeOnly, Handler: d.Pizzas.UpdatePizzaSoldOut},

		// Order routes
		{Name: "GetRecentOrders", Method: http.MethodGet, Path: APIPrefix + "/orders", Tier: middleware.TierEmployeeOnly, Handler: d.Orders.GetRecentOrders},
		{Name: "GetOrderById", Method: http.MethodGet, Path: APIPrefix + "/orders/:id", Tier: middleware.TierEmployeeOnly, Handler: d.Orders.GetOrderByID},
		{Name: "UpdateOrderStatus", Method: http.MethodPut, Path: APIPrefix + "/orders/:id/status", Tier: middleware.TierEmployeeOnly, Handler: d.Orders.UpdateOrderStatus},
		{Name: "UpdateOrderPriority", Method: http.MethodPut, Path: APIPrefix + "/orders/:id/priority", Tier: middleware.TierEmployeeOnly, Handler: d.Orders.UpdateOrderPriority},
	}
}

// Register mounts every route behind the policy engine for its tier
func Register(router gin.IRoutes, table []Route, validator auth.TokenValidator) {
	for _, route := range table {
		router.Handle(route.Method, route.Path, middleware.Authorize(route.Tier, validator), route.Handler)
	}
}

// NewRouter builds the engine. The transport gate runs before every other
// middleware, then logging, recovery, CORS and the request deadline.
func NewRouter(opts Options, deps Dependencies) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.HTTPSRedirect(opts.BackendPort),
		middleware.RequestLogger(),
		gin.Recovery(),
		middleware.CORS(opts.AllowedOrigins),
		middleware.Timeout(opts.RequestTimeout),
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRouteNotFound))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.NewErrorResponse(models.MsgMethodNotAllowed))
	})

	Register(router, Table(deps), deps.Validator)
	return router
}
