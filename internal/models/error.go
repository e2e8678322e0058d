package models

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Message string `json:"message"`
}

// Error messages returned to clients
const (
	MsgPizzaNotFound    = "Pizza not found"
	MsgOrderNotFound    = "Order not found"
	MsgInvalidPizzaID   = "Invalid pizza ID format"
	MsgInvalidOrderID   = "Invalid order ID format"
	MsgInvalidPrice     = "Price must be a non-negative decimal with at most two fractional digits"
	MsgInvalidBoolean   = "Value must be true or false"
	MsgInvalidStatus    = "Status must be a non-empty string of at most 50 characters"
	MsgUnauthenticated  = "A valid bearer token is required"
	MsgForbidden        = "Employee role required"
	MsgTimeout          = "Request timed out"
	MsgInternal         = "Internal server error"
	MsgStoreUnavailable = "Store unavailable"
	MsgRouteNotFound    = "Route not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// NewErrorResponse creates a new error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
