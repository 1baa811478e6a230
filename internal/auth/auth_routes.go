package auth

import (
	"github.com/ahmedalmoraly/clockin-system/internal/middleware"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimitByIP(rate.Limit(5), 10))
	{
		authGroup.GET("/url", h.GetAuthURL)
		authGroup.POST("/session", h.CreateSession)
		authGroup.POST("/signin", h.SignIn)
		authGroup.POST("/signout", h.SignOut)

		authGroup.GET("/me", middleware.AuthMiddleware(), h.Me)
	}
}
