package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grocery-genius/internal/api"
	"grocery-genius/internal/api/middleware"
	"grocery-genius/internal/core/ai/cache"
	"grocery-genius/internal/core/ai/queue"
	aiService "grocery-genius/internal/core/ai/service"
	"grocery-genius/internal/core/donation"
	"grocery-genius/internal/core/recipe"
	"grocery-genius/internal/core/service"
	"grocery-genius/internal/infrastructure/config"
	"grocery-genius/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	// 載入設定（含 .env）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("openrouter_api_key", cfg.OpenRouter.APIKey),
		zap.String("openrouter_model", cfg.OpenRouter.Model),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("impact_enabled", cfg.Impact.Enabled),
	)

	// 初始化快取
	store, err := cache.NewStore(context.Background(), cfg)
	if err != nil {
		common.LogFatal("Failed to initialize cache", zap.Error(err))
	}
	if store != nil {
		defer store.Close()
	}

	// AI 請求鏈：OpenRouter -> 隊列 -> 快取與限流
	queueManager := queue.NewManager(cfg.Queue, service.NewOpenRouterService(cfg.OpenRouter))
	defer queueManager.Close()
	generator := recipe.NewGenerationService(aiService.NewService(cfg, queueManager, store), cfg.Recipes)

	deps := api.Dependencies{
		Generator: generator,
		Store:     store,
		Queue:     queueManager,
		Dedup:     middleware.NewDeduplicator(cfg.DedupWindow),
	}
	defer deps.Dedup.Stop()
	if cfg.Impact.Enabled {
		deps.Impact = donation.NewImpactClient(cfg.Impact.BaseURL, cfg.Impact.Timeout)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      api.SetupRouter(cfg, deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		return
	}

	common.LogInfo("Server exited")
}
