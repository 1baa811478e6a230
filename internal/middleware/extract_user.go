package middleware

import (
	"net/http"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/response"
	"github.com/gin-gonic/gin"
)

func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		employeeID, exists := ctx.Get("employee_id")
		if !exists {
			response.Error(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "User is not authenticated", nil)
			ctx.Abort()
			return
		}

		employeeIDStr, ok := employeeID.(string)
		if !ok || employeeIDStr == "" {
			response.Error(ctx, http.StatusUnauthorized, "INVALID_USER_ID", "Invalid employee_id format", nil)
			ctx.Abort()
			return
		}

		ctx.Set("user_id_validated", employeeIDStr)
		ctx.Next()
	}
}
