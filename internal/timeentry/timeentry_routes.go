package timeentry

import (
	"github.com/ahmedalmoraly/clockin-system/internal/middleware"
	"github.com/ahmedalmoraly/clockin-system/internal/rbac"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	entries := r.Group("/time-entries")
	entries.Use(middleware.AuthMiddleware(), middleware.ExtractUserID(), middleware.ContextLogger(zap.L()))
	{
		entries.GET("", middleware.RBACAuthorize(rbacService, "timeentry", "read_all"), h.GetAll)
		entries.GET("/me", middleware.RBACAuthorize(rbacService, "timeentry", "read"), h.GetMine)

		// Writes race against the row store; throttle and dedupe them.
		write := entries.Group("")
		write.Use(middleware.RateLimitByUser(rate.Limit(1), 3), middleware.Idempotency(rdb))
		{
			write.POST("/clock-in", middleware.RBACAuthorize(rbacService, "timeentry", "create"), h.ClockIn)
			write.POST("/clock-out", middleware.RBACAuthorize(rbacService, "timeentry", "create"), h.ClockOut)
		}
	}
}
