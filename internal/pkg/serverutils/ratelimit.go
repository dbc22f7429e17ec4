package serverutils

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware enforces a fixed-window limit per client IP,
// backed by Redis. When Redis is unreachable the request is let
// through; the public lookup must not go dark because the limiter did.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if rdb == nil {
			return ctx.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%d", ctx.IP(), time.Now().Unix()/int64(window.Seconds()))

		count, err := rdb.Incr(ctx.Context(), key).Result()
		if err != nil {
			return ctx.Next()
		}
		if count == 1 {
			rdb.Expire(ctx.Context(), key, window)
		}

		if count > int64(limit) {
			return ErrorResponse(ctx, fiber.StatusTooManyRequests, "too many requests")
		}
		return ctx.Next()
	}
}
