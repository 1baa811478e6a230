package app

import (
	"fmt"
	"log"
	"os"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/connection"
	"github.com/gin-gonic/gin"
)

func BuildApp(router *gin.Engine) error {
	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	if spreadsheetID == "" {
		return fmt.Errorf("SPREADSHEET_ID is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	log.Println("✅ Redis connection established")

	return registerModules(router, spreadsheetID, redisClient)
}
