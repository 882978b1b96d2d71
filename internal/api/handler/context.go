package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spendwise/expense-system/internal/core/ports"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both the role and a
// positive user id must be present (presence proves the middleware ran).
func ctxActor(c echo.Context) (ports.Actor, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, ok := c.Get("user_id").(int64)
	if !ok || userID <= 0 {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
	}

	return ports.Actor{UserID: userID, Role: role}, nil
}
