package report

import (
	"github.com/ahmedalmoraly/clockin-system/internal/middleware"
	"github.com/ahmedalmoraly/clockin-system/internal/rbac"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(), middleware.ExtractUserID(), middleware.ContextLogger(zap.L()))
	{
		reports.GET("/monthly", middleware.RBACAuthorize(rbacService, "report", "read"), h.Monthly)
	}
}
