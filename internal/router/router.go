// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"slotbook/internal/cache"
	"slotbook/internal/database"
	"slotbook/internal/handler"
	"slotbook/internal/handler/auth"
	"slotbook/internal/handler/bookings"
	"slotbook/internal/handler/users"
	"slotbook/internal/metrics"
	"slotbook/internal/middleware"
	"slotbook/internal/worker"
)

// LoginRateLimit caps login attempts per client IP per window.
const (
	LoginRateLimit  = 10
	LoginRateWindow = time.Minute
)

// Setup registers every route. Handlers receive their collaborators here;
// nothing reaches for globals.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	e.Use(metrics.Middleware())
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(db)

	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	api.POST("/auth/login", auth.LoginHandler(db), middleware.RateLimit(rdb, LoginRateLimit, LoginRateWindow))
	api.POST("/auth/logout", auth.LogoutHandler())

	// Registration is open; everything else on users needs a bearer token.
	apiUsers := api.Group("/users")
	apiUsers.POST("", users.CreateUserHandler(db, wp))
	apiUsers.GET("", users.ListUsersHandler(db), requireAuth)
	apiUsers.GET("/:id", users.GetUserHandler(db), requireAuth)
	apiUsers.PUT("/:id", users.UpdateUserHandler(db), requireAuth)
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db, wp), requireAuth)

	apiBookings := api.Group("/bookings", requireAuth)
	apiBookings.POST("", bookings.CreateBookingHandler(db, wp))
	apiBookings.GET("", bookings.ListBookingsHandler(db))
	apiBookings.GET("/all", bookings.ListBookingsWithOwnersHandler(db))
	apiBookings.GET("/:id", bookings.GetBookingHandler(db))
	apiBookings.PUT("/:id", bookings.UpdateBookingHandler(db, wp))
	apiBookings.DELETE("/:id", bookings.DeleteBookingHandler(db, wp))
	apiBookings.GET("/user/:user_id", bookings.ListUserBookingsHandler(db))
}
