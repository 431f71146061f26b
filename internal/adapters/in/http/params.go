package http

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pageParams reads skip/limit query parameters. Absent or malformed values
// fall back to zero, which the query layer normalizes to its defaults.
func pageParams(ctx echo.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(ctx.QueryParam("skip"))
	limit, _ = strconv.Atoi(ctx.QueryParam("limit"))
	return skip, limit
}
