package employee

import (
	"github.com/ahmedalmoraly/clockin-system/internal/middleware"
	"github.com/ahmedalmoraly/clockin-system/internal/rbac"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(), middleware.ExtractUserID(), middleware.ContextLogger(zap.L()))
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employee", "read"), h.GetAll)
	}
}
