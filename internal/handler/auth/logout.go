// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LogoutHandler acknowledges logout. Tokens are not tracked server-side, so
// discarding the token is the client's job and no state changes here.
// @Summary     Log out
// @Description Acknowledge logout; the client discards its token
// @Tags        auth
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      /auth/logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Successfully logged out."})
	}
}
