package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/constants"
	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/utils"
	"github.com/labstack/echo/v4"
)

// CounterStore is the subset of the cache store the limiter needs
type CounterStore interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (int64, error)
}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Store  CounterStore
	Scope  string        // part of the Redis key, e.g. "ip"
	Limit  int           // Maximum number of requests
	Period time.Duration // Window length, anchored at the first request
}

// RateLimiterMiddleware counts requests per client IP in Redis with a fixed window
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf(constants.KeyRateLimit, config.Scope, c.RealIP())

			count, err := config.Store.Incr(ctx, key)
			if err != nil {
				logger.ErrorCtx(ctx, "Rate limiter increment failed", logger.String("key", key), logger.Err(err))
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
			}

			ttl, err := config.Store.TTL(ctx, key)
			if err == nil && ttl < 0 {
				// first hit in the window, or a counter that lost its expiry
				if _, err = config.Store.Expire(ctx, key, config.Period); err == nil {
					ttl = int64(config.Period / time.Second)
				}
			}
			if err != nil {
				logger.ErrorCtx(ctx, "Rate limiter expiry failed", logger.String("key", key), logger.Err(err))
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Duration(ttl)*time.Second).Unix(), 10))

			if int(count) > config.Limit {
				return utils.TooManyRequestsResponse(c, "Rate limit exceeded", time.Duration(ttl)*time.Second)
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, store CounterStore) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Store:  store,
		Scope:  "ip",
		Limit:  limit,
		Period: period,
	})
}
