package api

import (
	"context"
	"time"

	"grocery-genius/internal/api/handlers"
	"grocery-genius/internal/api/handlers/donation"
	"grocery-genius/internal/api/handlers/health"
	recipeHandler "grocery-genius/internal/api/handlers/recipe"
	"grocery-genius/internal/api/handlers/shopping"
	"grocery-genius/internal/api/handlers/substitution"
	"grocery-genius/internal/api/middleware"
	"grocery-genius/internal/core/ai/cache"
	donationCore "grocery-genius/internal/core/donation"
	shoppingCore "grocery-genius/internal/core/shopping"
	substitutionCore "grocery-genius/internal/core/substitution"
	"grocery-genius/internal/infrastructure/config"
	"grocery-genius/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// 單一請求的處理時限
const timeoutDuration = 120 * time.Second

// Dependencies 路由所需的外部服務；除 Generator 外皆可為 nil
type Dependencies struct {
	Generator recipeHandler.Generator
	Store     cache.Store
	Queue     health.QueueStatusProvider
	Impact    donation.ImpactCalculator
	Dedup     *middleware.Deduplicator
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) { handlers.RespondError(c, common.ErrNotFound) })
	router.NoMethod(func(c *gin.Context) { handlers.RespondError(c, common.ErrMethodNotAllowed) })

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)))
	}

	dedup := deps.Dedup
	if dedup == nil {
		dedup = middleware.NewDeduplicator(cfg.DedupWindow)
	}
	router.Use(dedup.Middleware())

	// 請求超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// 健康檢查路由
	healthHandler := health.NewHandler(cfg, deps.Store, deps.Queue)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	recipes := recipeHandler.NewHandler(deps.Generator)
	lists := shopping.NewHandler(shoppingCore.NewDiffer(nil), shoppingCore.NewAggregator())
	donations := donation.NewHandler(donationCore.NewEstimator(nil), deps.Impact)
	substitutions := substitution.NewHandler(substitutionCore.NewMatcher(nil))

	// API 路由組
	api := router.Group("/api/v1")
	{
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.POST("/generate", recipes.HandleGenerate)
			recipeGroup.POST("/grade", recipes.HandleGrade)
		}

		ingredientGroup := api.Group("/ingredients")
		{
			ingredientGroup.POST("/parse", recipeHandler.HandleParse)
			ingredientGroup.POST("/extract", recipeHandler.HandleExtract)
		}

		shoppingGroup := api.Group("/shopping")
		{
			shoppingGroup.POST("/missing", lists.HandleMissing)
			shoppingGroup.POST("/week", lists.HandleWeek)
		}

		donationGroup := api.Group("/donations")
		{
			donationGroup.POST("/estimate", donations.HandleEstimate)
			donationGroup.POST("/suggest", donations.HandleSuggest)
			donationGroup.GET("/food-banks", donations.HandleFoodBanks)
			donationGroup.GET("/food-banks/:id", donations.HandleFoodBank)
		}

		api.POST("/substitutions", substitutions.HandleFind)
	}

	common.LogInfo("Router setup completed",
		zap.Bool("cache_enabled", deps.Store != nil),
		zap.Bool("impact_enabled", deps.Impact != nil),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router
}
