package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"slotbook/internal/database"
	"slotbook/internal/model"
	"slotbook/internal/service"
	"slotbook/internal/store"
)

const ContextUserKey = "current_user"

var getUserByUsername = store.GetUserByUsername

func extractSubject(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	username, err := service.VerifyAccessToken(parts[1])
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}
	return username, nil
}

// RequireAuth resolves the bearer token to a user record on every request.
// The token only proves identity; role and active state always come from the
// store, so a demoted or deleted user is locked out immediately.
func RequireAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, err := extractSubject(c)
			if err != nil {
				return err
			}
			user, err := getUserByUsername(c.Request().Context(), db, username)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusBadRequest, "inactive user")
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil outside it.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
