package timeentry

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/apperror"
	"github.com/ahmedalmoraly/clockin-system/internal/shared/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ClockIn(c *gin.Context) {
	h.finishIdempotent(c, func(c *gin.Context) (any, int, error) {
		resp, err := h.service.ClockIn(c.Request.Context(), c.GetString("user_id_validated"))
		return resp, http.StatusCreated, err
	})
}

func (h *Handler) ClockOut(c *gin.Context) {
	h.finishIdempotent(c, func(c *gin.Context) (any, int, error) {
		resp, err := h.service.ClockOut(c.Request.Context(), c.GetString("user_id_validated"))
		return resp, http.StatusOK, err
	})
}

// finishIdempotent completes the idempotency cycle started by the
// middleware: the lock is always released, and the response body is cached
// only for successful writes.
func (h *Handler) finishIdempotent(c *gin.Context, fn func(c *gin.Context) (any, int, error)) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	resp, status, err := fn(c)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, status, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.writePage(c, resp)
}

func (h *Handler) GetMine(c *gin.Context) {
	resp, err := h.service.GetForUser(c.Request.Context(), c.GetString("user_id_validated"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.writePage(c, resp)
}

func (h *Handler) writePage(c *gin.Context, resp []EntryResponse) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}
