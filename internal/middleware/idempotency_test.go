package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	calls := 0
	r := gin.New()
	r.POST("/clock-in",
		func(c *gin.Context) { c.Set("user_id_validated", "emp-1") },
		Idempotency(rdb),
		func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		},
	)
	return r, mock, &calls
}

func TestIdempotency_PassThroughWithoutKey(t *testing.T) {
	r, _, calls := newIdempotencyRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clock-in", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, *calls)
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	r, mock, calls := newIdempotencyRouter(t)

	mock.ExpectGet("idemp:/clock-in:emp-1:key-1").SetVal(`{"id":"aaa111aaa"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clock-in", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "aaa111aaa")
	assert.Equal(t, 0, *calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestTakesLock(t *testing.T) {
	r, mock, calls := newIdempotencyRouter(t)

	mock.ExpectGet("idemp:/clock-in:emp-1:key-1").RedisNil()
	mock.ExpectSetNX("idemp:/clock-in:emp-1:key-1:lock", "locked", 30*time.Second).SetVal(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clock-in", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, *calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentDuplicateRejected(t *testing.T) {
	r, mock, calls := newIdempotencyRouter(t)

	mock.ExpectGet("idemp:/clock-in:emp-1:key-1").RedisNil()
	mock.ExpectSetNX("idemp:/clock-in:emp-1:key-1:lock", "locked", 30*time.Second).SetVal(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clock-in", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, *calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
