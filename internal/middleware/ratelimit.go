package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"slotbook/internal/cache"
)

// RateLimit caps requests per client IP inside a rolling window, backed by a
// redis counter so the cap holds across replicas. Redis being down must not
// take logins with it, so errors fail open.
func RateLimit(rdb cache.Cache, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + c.Path() + ":" + c.RealIP()

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				rdb.Expire(ctx, key, window)
			}
			if n > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
