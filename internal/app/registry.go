package app

import (
	"os"
	"strings"
	"time"

	"github.com/ahmedalmoraly/clockin-system/internal/auth"
	"github.com/ahmedalmoraly/clockin-system/internal/credentials"
	"github.com/ahmedalmoraly/clockin-system/internal/employee"
	"github.com/ahmedalmoraly/clockin-system/internal/messaging/kafka"
	"github.com/ahmedalmoraly/clockin-system/internal/middleware"
	"github.com/ahmedalmoraly/clockin-system/internal/presence"
	"github.com/ahmedalmoraly/clockin-system/internal/rbac"
	"github.com/ahmedalmoraly/clockin-system/internal/report"
	"github.com/ahmedalmoraly/clockin-system/internal/sheets"
	"github.com/ahmedalmoraly/clockin-system/internal/timeentry"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func registerModules(
	router *gin.Engine,
	spreadsheetID string,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig()))

	// --- Infrastructure ---
	sheetsClient := sheets.NewClient(spreadsheetID)
	credStore := credentials.NewRedisStore(rdb)
	credProvider := credentials.NewSessionProvider(credStore)
	outboxRepo := kafka.NewRedisOutboxRepository(rdb)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Repositories ---
	employeeRepo := employee.NewRepository(sheetsClient, credProvider)
	timeEntryRepo := timeentry.NewRepository(sheetsClient, credProvider)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, rdb)
	timeEntryService := timeentry.NewServiceWithOutbox(timeEntryRepo, employeeService, outboxRepo)
	reportService := report.NewService(timeEntryRepo)
	presenceService := presence.NewService(rdb)
	authService := auth.NewService(auth.NewGoogleExchanger(), credStore, employeeService)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	timeEntryHandler := timeentry.NewHandlerWithRedis(timeEntryService, rdb)
	reportHandler := report.NewHandler(reportService)
	presenceHandler := presence.NewHandler(presenceService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		timeentry.RegisterRoutes(api, timeEntryHandler, rbacService, rdb)
		report.RegisterRoutes(api, reportHandler, rbacService)
		presence.RegisterRoutes(api, presenceHandler, rbacService)
	}

	return nil
}

func corsConfig() cors.Config {
	origins := []string{"http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
