package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"golf-coach/config"
	_ "golf-coach/docs" // Swagger docs
	"golf-coach/internal/chain"
	coachUC "golf-coach/internal/coach/usecase"
	"golf-coach/internal/httpserver"
	"golf-coach/internal/middleware"
	"golf-coach/internal/prompt"
	"golf-coach/internal/router"
	"golf-coach/pkg/llmprovider"
	"golf-coach/pkg/log"
)

// @title       Golf Coach API
// @description Routes golf questions to a coaching persona and answers them with a language model.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 0. .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Failed to load .env: ", err)
	}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Golf Coach...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model gateway
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM config: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, managerCfg, logger)

	routerGen := llmprovider.NewGenerator(manager, llmprovider.GenerateOptions{
		Temperature: cfg.Router.Temperature,
		MaxTokens:   cfg.Router.MaxTokens,
	})
	coachGen := llmprovider.NewGenerator(manager, llmprovider.GenerateOptions{
		Temperature: cfg.Coach.Temperature,
		MaxTokens:   cfg.Coach.MaxTokens,
	})

	// 4. Coach domain
	registry, err := prompt.Golf()
	if err != nil {
		logger.Error(ctx, "Invalid prompt registry: ", err)
		return
	}
	chains, err := chain.BuildDestinations(registry, coachGen)
	if err != nil {
		logger.Error(ctx, "Failed to build destination chains: ", err)
		return
	}
	uc := coachUC.New(logger, router.New(routerGen, registry, logger), registry, chains, chain.NewDefault(coachGen))
	logger.Infof(ctx, "Destinations: %v", registry.Names())

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, cfg.CORS, cfg.RateLimit),
		CoachUseCase:    uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
