// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"slotbook/internal/api"
	"slotbook/internal/database"
	"slotbook/internal/service"
	"slotbook/internal/store"
)

var (
	getUserByUsername = store.GetUserByUsername
	comparePassword   = service.ComparePassword
	issueAccessToken  = service.IssueAccessToken
)

// LoginHandler authenticates a username/password pair and returns a bearer token.
// @Summary     Log in
// @Description Verify username and password, return a signed access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body api.LoginRequest true "Login credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse "Inactive user"
// @Failure     401 {object} api.ErrorResponse "Bad credentials"
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByUsername(c.Request().Context(), db, req.Username)
		if err != nil {
			// Unknown username and wrong password are indistinguishable to the caller.
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "incorrect username or password"})
		}

		if err := comparePassword(user.HashedPassword, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "incorrect username or password"})
		}

		if !user.IsActive {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "inactive user"})
		}

		token, err := issueAccessToken(user.Username, service.AccessTokenTTL())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
