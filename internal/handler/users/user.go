package users

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"slotbook/internal/api"
	"slotbook/internal/database"
	"slotbook/internal/middleware"
	"slotbook/internal/model"
	"slotbook/internal/service"
	"slotbook/internal/store"
	"slotbook/internal/worker"
)

var (
	hashPassword     = service.HashPassword
	createUser       = store.CreateUser
	getUserByID      = store.GetUserByID
	listUsers        = store.ListUsers
	updateUser       = store.UpdateUser
	deleteUser       = store.DeleteUser
	insertAuditEntry = store.InsertAuditEntry
)

func conflictMessage(constraint string) string {
	if strings.Contains(constraint, "email") {
		return "Email already registered"
	}
	return "Username already registered"
}

func pagination(c echo.Context) (int, int) {
	skip, limit := 0, 100
	if v := c.QueryParam("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return skip, limit
}

// CreateUserHandler registers a new account. Open endpoint: this is how
// users sign up. Uniqueness of username and email is left to the database
// constraints so concurrent registrations cannot both win.
// @Summary     Create a new user
// @Description Register an account with a hashed password
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body api.CreateUserRequest true "New user"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse "Validation error or duplicate username/email"
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		role := model.RoleUser
		if req.Role != "" {
			role = model.Role(req.Role)
		}
		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:       req.Username,
			Email:          strings.ToLower(req.Email),
			FullName:       req.FullName,
			Role:           role,
			IsActive:       isActive,
			HashedPassword: hash,
		})
		if err != nil {
			if constraint, ok := store.UniqueViolation(err); ok {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: conflictMessage(constraint)})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		auditAsync(c, db, wp, user.ID, "user.create", "user", user.ID)

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// ListUsersHandler pages through all users in insertion order.
// @Summary     List users
// @Tags        users
// @Produce     json
// @Param       skip  query int false "Rows to skip"  default(0)
// @Param       limit query int false "Page size"     default(100)
// @Success     200 {array}  api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		skip, limit := pagination(c)
		users, err := listUsers(c.Request().Context(), db, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, api.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetUserHandler returns one user by ID.
// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// UpdateUserHandler applies a partial update: only fields present in the
// request touch the record, a supplied password is re-hashed, and updated_at
// is stamped.
// @Summary     Update a user by ID
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "User ID"
// @Param       user body api.UpdateUserRequest true "Fields to change"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse "Validation error or duplicate username/email"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if req.Username != nil {
			user.Username = *req.Username
		}
		if req.Email != nil {
			user.Email = strings.ToLower(*req.Email)
		}
		if req.FullName != nil {
			user.FullName = req.FullName
		}
		if req.Role != nil {
			user.Role = model.Role(*req.Role)
		}
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}
		if req.Password != nil {
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
			}
			user.HashedPassword = hash
		}
		now := time.Now().UTC()
		user.UpdatedAt = &now

		if err := updateUser(c.Request().Context(), db, user); err != nil {
			if constraint, ok := store.UniqueViolation(err); ok {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: conflictMessage(constraint)})
			}
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// DeleteUserHandler removes a user. Their bookings go with them via the
// foreign key cascade.
// @Summary     Delete a user by ID
// @Tags        users
// @Param       id path int true "User ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		actorID := id
		if cu := middleware.CurrentUser(c); cu != nil {
			actorID = cu.ID
		}
		auditAsync(c, db, wp, actorID, "user.delete", "user", id)

		return c.NoContent(http.StatusNoContent)
	}
}

// auditAsync records the mutation off the request path. The request context
// is gone by the time the task runs, so the insert uses its own.
func auditAsync(c echo.Context, db database.DB, wp worker.Pool, actorID int, action, entityType string, entityID int) {
	if wp == nil {
		return
	}
	logger := c.Logger()
	wp.Submit(func() {
		entry := &model.AuditEntry{
			ActorID:    actorID,
			Action:     action,
			EntityType: entityType,
			EntityID:   entityID,
		}
		if err := insertAuditEntry(context.Background(), db, entry); err != nil {
			logger.Errorf("audit: %v", err)
		}
	})
}
