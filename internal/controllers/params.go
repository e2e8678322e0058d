package controllers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidID is returned when a path id cannot be parsed
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidValue is returned when a mutation value is missing or malformed
	ErrInvalidValue = errors.New("invalid value")
)

// Query parameter names accepted for mutation values. When the parameter is
// absent the value is read from the request body as a bare JSON scalar.
const (
	paramNewPrice  = "newPrice"
	paramSoldOut   = "soldOut"
	paramNewStatus = "newStatus"
	paramPriority  = "priority"
)

// Rules for caller-supplied strings, matching the column widths
const (
	orderIDRule = "required,max=50"
	statusRule  = "required,max=50"
)

// maxPrice is the first value that no longer fits a decimal(10,2) column
var maxPrice = decimal.New(1, 8)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parsePizzaID accepts only ids that fit the 32-bit serial column
func parsePizzaID(ctx *gin.Context) (int, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, ErrInvalidID
	}
	return int(id), nil
}

func parseOrderID(ctx *gin.Context) (string, error) {
	id := ctx.Param("id")
	if err := validate.Var(id, orderIDRule); err != nil {
		return "", ErrInvalidID
	}
	return id, nil
}

// rawValue returns the query parameter when present, otherwise the request body.
// fromBody reports which one was used.
func rawValue(ctx *gin.Context, param string) (raw string, fromBody bool, err error) {
	if value, ok := ctx.GetQuery(param); ok {
		return value, false, nil
	}
	body, err := ctx.GetRawData()
	if err != nil {
		return "", true, ErrInvalidValue
	}
	raw = strings.TrimSpace(string(body))
	if raw == "" || raw == "null" {
		return "", true, ErrInvalidValue
	}
	return raw, true, nil
}

func parseBool(ctx *gin.Context, param string) (bool, error) {
	raw, fromBody, err := rawValue(ctx, param)
	if err != nil {
		return false, err
	}
	if fromBody {
		var value bool
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return false, ErrInvalidValue
		}
		return value, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, ErrInvalidValue
	}
	return value, nil
}

// parsePrice accepts a non-negative decimal with at most two fractional digits
// that fits the unit_price column
func parsePrice(ctx *gin.Context, param string) (decimal.Decimal, error) {
	raw, fromBody, err := rawValue(ctx, param)
	if err != nil {
		return decimal.Zero, err
	}
	var price decimal.Decimal
	if fromBody {
		err = json.Unmarshal([]byte(raw), &price)
	} else {
		price, err = decimal.NewFromString(raw)
	}
	if err != nil {
		return decimal.Zero, ErrInvalidValue
	}
	if price.IsNegative() || price.GreaterThanOrEqual(maxPrice) || !price.Equal(price.Round(2)) {
		return decimal.Zero, ErrInvalidValue
	}
	return price, nil
}

func parseStatus(ctx *gin.Context, param string) (string, error) {
	raw, fromBody, err := rawValue(ctx, param)
	if err != nil {
		return "", err
	}
	status := raw
	if fromBody {
		if err := json.Unmarshal([]byte(raw), &status); err != nil {
			return "", ErrInvalidValue
		}
	}
	status = strings.TrimSpace(status)
	if err := validate.Var(status, statusRule); err != nil {
		return "", ErrInvalidValue
	}
	return status, nil
}
