package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

// Idempotency replays the cached response of a POST that carried the same
// Idempotency-Key for the same user and route. While the first request is
// still running, duplicates get 409 PROCESSING. Handlers persist their result
// with StoreIdempotentResponse and release the lock with ReleaseIdempotencyLock.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID := c.GetString(ContextUserID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var cached any
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		case !errors.Is(err, redis.Nil):
			// redis unavailable: serve the request without idempotency
			log.Warn("idempotency cache lookup failed", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, http.StatusConflict, apperror.CodeProcessing, "Request is already being processed")
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)

		c.Next()
	}
}

// StoreIdempotentResponse caches data under the request's idempotency key, if any.
func StoreIdempotentResponse(c *gin.Context, rdb *redis.Client, data any) {
	cacheKey := c.GetString(idempotencyCacheKey)
	if rdb == nil || cacheKey == "" {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	_ = rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyCacheTTL).Err()
}

// ReleaseIdempotencyLock drops the in-flight lock taken by Idempotency.
func ReleaseIdempotencyLock(c *gin.Context, rdb *redis.Client) {
	lockKey := c.GetString(idempotencyLockKey)
	if rdb == nil || lockKey == "" {
		return
	}
	_ = rdb.Del(c.Request.Context(), lockKey).Err()
}
