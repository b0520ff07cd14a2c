package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func idempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, redisMock := redismock.NewClientMock()
	handlerCalls := 0

	router := gin.New()
	router.POST("/payrolls", middleware.Idempotency(rdb), func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	return router, redisMock, &handlerCalls
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	router, redisMock, calls := idempotencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payrolls", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, *calls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	router, redisMock, calls := idempotencyRouter(t)

	cached, _ := json.Marshal(gin.H{"id": "abc-123"})
	redisMock.ExpectGet("idemp:/payrolls:req-1").SetVal(string(cached))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payrolls", nil)
	req.Header.Set("Idempotency-Key", "req-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, *calls)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_RejectsConcurrentDuplicate(t *testing.T) {
	router, redisMock, calls := idempotencyRouter(t)

	redisMock.ExpectGet("idemp:/payrolls:req-2").RedisNil()
	redisMock.ExpectSetNX("idemp:/payrolls:req-2:lock", "locked", 30*time.Second).SetVal(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payrolls", nil)
	req.Header.Set("Idempotency-Key", "req-2")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, *calls)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestAcquiresLock(t *testing.T) {
	router, redisMock, calls := idempotencyRouter(t)

	redisMock.ExpectGet("idemp:/payrolls:req-3").RedisNil()
	redisMock.ExpectSetNX("idemp:/payrolls:req-3:lock", "locked", 30*time.Second).SetVal(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payrolls", nil)
	req.Header.Set("Idempotency-Key", "req-3")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, *calls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
