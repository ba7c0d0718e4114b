package handler

import (
	"stablecoin-payment-rail/internal/adapter/http/middleware"
	redisStore "stablecoin-payment-rail/internal/adapter/storage/redis"
	"stablecoin-payment-rail/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OnboardingSvc  ports.OnboardingService
	PaymentLinkSvc ports.PaymentLinkService
	MerchantRepo   ports.MerchantRepository
	LinkCache      ports.LinkCache            // nil = cached link reads disabled
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

	merchantHandler := NewMerchantHandler(deps.OnboardingSvc, deps.MerchantRepo)
	merchants := v1.Group("/merchants")
	{
		merchants.POST("", rl("merchants_onboard"), merchantHandler.Onboard)
		merchants.GET("", rl("reads"), merchantHandler.List)
		merchants.GET("/:id", rl("reads"), merchantHandler.GetByID)
	}

	paymentLinkHandler := NewPaymentLinkHandler(deps.PaymentLinkSvc, deps.LinkCache)
	paymentLinks := v1.Group("/payment-links")
	{
		paymentLinks.POST("", rl("payment_links"), paymentLinkHandler.Generate)
		paymentLinks.GET("/:orderID", rl("reads"), paymentLinkHandler.GetByOrderID)
	}

	return r
}
