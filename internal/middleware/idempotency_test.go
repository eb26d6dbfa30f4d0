package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

const idempCacheKey = "idemp:/payrolls/generate:u1:k1"

func idempotencyRouter(rdb *redis.Client, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payrolls/generate",
		func(c *gin.Context) { c.Set("user_id_validated", "u1") },
		middleware.Idempotency(rdb),
		handler,
	)
	return r
}

func postGenerate(r *gin.Engine, idempKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payrolls/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if idempKey != "" {
		req.Header.Set("Idempotency-Key", idempKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysCachedResponseInEnvelope(t *testing.T) {
	dbRedis, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(idempCacheKey).SetVal(`{"generated":3}`)

	r := idempotencyRouter(dbRedis, func(c *gin.Context) {
		t.Fatal("handler must not run on a cached replay")
	})

	w := postGenerate(r, "k1")

	assert.Equal(t, http.StatusOK, w.Code)

	var env response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)

	data, ok := env.Data.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, float64(3), data["generated"])

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_RejectsWhileFirstRequestInFlight(t *testing.T) {
	dbRedis, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(idempCacheKey).RedisNil()
	redisMock.ExpectSetNX(idempCacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	r := idempotencyRouter(dbRedis, func(c *gin.Context) {
		t.Fatal("handler must not run while the lock is held")
	})

	w := postGenerate(r, "k1")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestPassesThrough(t *testing.T) {
	dbRedis, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(idempCacheKey).RedisNil()
	redisMock.ExpectSetNX(idempCacheKey+":lock", "locked", 30*time.Second).SetVal(true)

	r := idempotencyRouter(dbRedis, func(c *gin.Context) {
		assert.Equal(t, idempCacheKey, c.GetString("idempotency_cache_key"))
		assert.Equal(t, idempCacheKey+":lock", c.GetString("idempotency_lock_key"))
		response.Success(c, http.StatusOK, gin.H{"generated": 3}, nil)
	})

	w := postGenerate(r, "k1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_NoKeySkipsRedis(t *testing.T) {
	dbRedis, redisMock := redismock.NewClientMock()

	handled := false
	r := idempotencyRouter(dbRedis, func(c *gin.Context) {
		handled = true
		response.Success(c, http.StatusOK, gin.H{}, nil)
	})

	w := postGenerate(r, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handled)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
