package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estately/realty-api/internal/api/middleware"
)

// ctxAccountID extracts the authenticated account id injected by the Auth
// middleware. Its presence proves the middleware ran; without it the
// request must not reach any service call.
func ctxAccountID(c echo.Context) (int64, error) {
	id, _ := c.Get(middleware.CtxAccountID).(int64)
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
