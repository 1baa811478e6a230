package presence

import (
	"github.com/ahmedalmoraly/clockin-system/internal/middleware"
	"github.com/ahmedalmoraly/clockin-system/internal/rbac"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	presence := r.Group("/presence")
	presence.Use(middleware.AuthMiddleware(), middleware.ExtractUserID(), middleware.ContextLogger(zap.L()))
	{
		presence.GET("", middleware.RBACAuthorize(rbacService, "presence", "read"), h.List)
	}
}
