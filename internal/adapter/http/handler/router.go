package handler

import (
	"campus-tap-engine/internal/adapter/http/middleware"
	redisStore "campus-tap-engine/internal/adapter/storage/redis"
	"campus-tap-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TapSvc         ports.TapService
	ReportingSvc   ports.ReportingService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Reader-facing routes ---
	tapHandler := NewTapHandler(deps.TapSvc)
	v1.POST("/tap", rl("tap"), tapHandler.ProcessTap)
	v1.POST("/attendance", rl("attendance"), tapHandler.MarkAttendance)

	// --- Dashboard read routes ---
	reportingHandler := NewReportingHandler(deps.ReportingSvc)
	v1.GET("/students", rl("reports"), reportingHandler.ListStudents)
	v1.GET("/transactions", rl("reports"), reportingHandler.ListTransactions)
	v1.GET("/attendance", rl("reports"), reportingHandler.ListAttendance)
	v1.GET("/policies", rl("reports"), reportingHandler.ListPolicies)

	return r
}
