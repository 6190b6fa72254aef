package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

const (
	idempCacheKey = "idemp:/payrolls:user-1:key-1"
	idempLockKey  = idempCacheKey + ":lock"
)

func newIdempotentRouter(rdb *redis.Client, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payrolls",
		func(c *gin.Context) {
			c.Set(middleware.ContextUserID, "user-1")
			c.Next()
		},
		middleware.Idempotency(rdb),
		func(c *gin.Context) {
			defer middleware.ReleaseIdempotencyLock(c, rdb)
			*calls++
			data := map[string]string{"id": "p-1"}
			middleware.StoreIdempotentResponse(c, rdb, data)
			c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
		},
	)
	return r
}

func postWithKey(key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/payrolls", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	return req
}

func TestIdempotency(t *testing.T) {
	t.Run("first request runs handler and caches result", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(idempCacheKey).RedisNil()
		mock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(idempCacheKey, []byte(`{"id":"p-1"}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(idempLockKey).SetVal(1)

		calls := 0
		w := httptest.NewRecorder()
		newIdempotentRouter(rdb, &calls).ServeHTTP(w, postWithKey("key-1"))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay returns cached body", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(idempCacheKey).SetVal(`{"id":"p-1"}`)

		calls := 0
		w := httptest.NewRecorder()
		newIdempotentRouter(rdb, &calls).ServeHTTP(w, postWithKey("key-1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, calls)
		assert.JSONEq(t, `{"ok":true,"data":{"id":"p-1"}}`, w.Body.String())
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(idempCacheKey).RedisNil()
		mock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(false)

		calls := 0
		w := httptest.NewRecorder()
		newIdempotentRouter(rdb, &calls).ServeHTTP(w, postWithKey("key-1"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.Equal(t, 0, calls)
	})

	t.Run("no key bypasses redis", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		calls := 0
		w := httptest.NewRecorder()
		newIdempotentRouter(rdb, &calls).ServeHTTP(w, postWithKey(""))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
