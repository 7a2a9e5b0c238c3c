package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/grade"
)

var orderParam = "order"

// bindOrder reads the transcript order from the query string, falling back to def.
// Values are passed through as given: unknown orders sort ascending.
func bindOrder(ctx echo.Context, def grade.Order) grade.Order {
	if val := core.CleanString(ctx.QueryParam(orderParam)); val != "" {
		return grade.Order(val)
	}
	return def
}
