package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yasunstudio/bagizi-id-sub002/internal/config"
	"github.com/yasunstudio/bagizi-id-sub002/internal/middleware"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/handler"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting sppg back office",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	rdb := initRedis(cfg.Redis)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, cfg, zapLogger)
	handlers := handler.NewHandlers(services, cfg)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	authed := api.Group("", middleware.JWTAuth(cfg.JWT.Secret))
	{
		authed.GET("/auth/me", h.Auth.Me)
		authed.GET("/dashboard", h.Dashboard.Overview)

		programs := authed.Group("/programs")
		{
			programs.GET("", h.Program.List)
			programs.GET("/:id", h.Program.Get)
			programs.POST("", middleware.RequireRole(entity.RoleKepala), h.Program.Create)
			programs.PUT("/:id", middleware.RequireRole(entity.RoleKepala), h.Program.Update)
		}

		categories := authed.Group("/food-categories")
		{
			categories.GET("", h.FoodCategory.Tree)
			categories.GET("/:id", h.FoodCategory.Get)
			categories.POST("", middleware.RequireRole(entity.RoleKepala), h.FoodCategory.Create)
			categories.PUT("/:id", middleware.RequireRole(entity.RoleKepala), h.FoodCategory.Update)
		}

		inventory := authed.Group("/inventory-items")
		{
			inventory.GET("", h.Inventory.List)
			inventory.GET("/:id", h.Inventory.Get)
			inventory.POST("", h.Inventory.Create)
			inventory.PUT("/:id", h.Inventory.Update)
		}

		menus := authed.Group("/menus")
		{
			menus.GET("", h.Menu.List)
			menus.GET("/:id", h.Menu.Get)
			menus.POST("", h.Menu.Create)
			menus.PUT("/:id", h.Menu.Update)
			menus.DELETE("/:id", h.Menu.Delete)
			menus.PUT("/:id/ingredients", h.Menu.SetIngredients)
			menus.PUT("/:id/recipe-steps", h.Menu.SetRecipeSteps)
		}

		menuPlans := authed.Group("/menu-plans")
		{
			menuPlans.GET("", h.MenuPlan.List)
			menuPlans.GET("/:id", h.MenuPlan.Get)
			menuPlans.POST("", h.MenuPlan.Create)
			menuPlans.POST("/:id/assignments", h.MenuPlan.AssignMenu)
			menuPlans.DELETE("/:id/assignments/:assignmentId", h.MenuPlan.RemoveAssignment)
			menuPlans.POST("/:id/submit", h.MenuPlan.Submit)
			menuPlans.POST("/:id/approve", middleware.RequireRole(entity.RoleKepala), h.MenuPlan.Approve)
		}

		plans := authed.Group("/procurement-plans")
		{
			plans.GET("", h.Plan.List)
			plans.GET("/:id", h.Plan.Get)
			plans.GET("/:id/allocation", h.Plan.Allocation)
			plans.GET("/:id/export", h.Plan.Export)
			plans.POST("", h.Plan.Create)
			plans.PUT("/:id", h.Plan.Update)
			plans.DELETE("/:id", h.Plan.Delete)
			plans.POST("/:id/submit", h.Plan.Submit)
			plans.POST("/:id/populate", h.Plan.Populate)
			plans.POST("/:id/start-review", middleware.RequireRole(entity.RoleKepala), h.Plan.StartReview)
			plans.POST("/:id/approve", middleware.RequireRole(entity.RoleKepala), h.Plan.Approve)
			plans.POST("/:id/reject", middleware.RequireRole(entity.RoleKepala), h.Plan.Reject)
			plans.POST("/:id/cancel", middleware.RequireRole(entity.RoleKepala), h.Plan.Cancel)
		}

		distribution := authed.Group("/distribution-costs")
		{
			distribution.GET("", h.Distribution.List)
			distribution.GET("/summary", h.Distribution.Summary)
			distribution.GET("/:id", h.Distribution.Get)
			distribution.POST("", h.Distribution.Create)
			distribution.DELETE("/:id", h.Distribution.Delete)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": 40400, "message": "Not found"})
	})
}
