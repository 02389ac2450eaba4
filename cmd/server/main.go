package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budgetwise/internal/advisor"
	"budgetwise/internal/config"
	"budgetwise/internal/database"
	"budgetwise/internal/handlers"
	"budgetwise/internal/middleware"
	"budgetwise/internal/repositories"
	"budgetwise/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(&cfg.Security)
	authService := services.NewAuthService(db, userRepo, passwordService, tokenService, logger)
	insightService := services.NewInsightService(transactionRepo, budgetRepo, categoryRepo)
	advisorClient := advisor.NewClient(cfg.Advisor.BaseURL, cfg.Advisor.APIKey, cfg.Advisor.Timeout)
	adviceService := services.NewAdviceService(advisorClient, transactionRepo, budgetRepo, categoryRepo, metrics, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, categoryRepo)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo, categoryRepo)
	dashboardHandler := handlers.NewDashboardHandler(insightService)
	adviceHandler := handlers.NewAdviceHandler(adviceService)
	healthHandler := handlers.NewHealthHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.Metrics(metrics))
	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2)
	e.Use(rateLimiter.Middleware())

	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	protected := api.Group("", middleware.RequireAuth(tokenService))

	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Create)
	protected.PUT("/categories/:id", categoryHandler.Update)
	protected.DELETE("/categories/:id", categoryHandler.Delete)

	protected.GET("/transactions", transactionHandler.List)
	protected.POST("/transactions", transactionHandler.Create)
	protected.PUT("/transactions/:id", transactionHandler.Update)
	protected.DELETE("/transactions/:id", transactionHandler.Delete)

	protected.GET("/budgets", budgetHandler.List)
	protected.POST("/budgets", budgetHandler.Create)
	protected.PUT("/budgets/:id", budgetHandler.Update)
	protected.DELETE("/budgets/:id", budgetHandler.Delete)

	protected.GET("/dashboard/overview", dashboardHandler.Overview)
	protected.GET("/dashboard/budget-progress", dashboardHandler.BudgetProgress)
	protected.GET("/dashboard/spending-series", dashboardHandler.SpendingSeries)
	protected.GET("/dashboard/category-spending", dashboardHandler.CategorySpending)

	protected.POST("/advice", adviceHandler.GetAdvice)

	if cfg.IsDevelopment() {
		sampleDataService := services.NewSampleDataService(transactionRepo, categoryRepo)
		sampleDataHandler := handlers.NewSampleDataHandler(sampleDataService)
		protected.POST("/dev/sample-data", sampleDataHandler.Generate)
	}

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}
