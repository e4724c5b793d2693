package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	redisclient "github.com/calmtree/profilewizard-backend/internal/clients/redis"
	"github.com/calmtree/profilewizard-backend/internal/db"
	"github.com/calmtree/profilewizard-backend/internal/handlers"
	"github.com/calmtree/profilewizard-backend/internal/logger"
	"github.com/calmtree/profilewizard-backend/internal/middleware"
	"github.com/calmtree/profilewizard-backend/internal/observability"
	"github.com/calmtree/profilewizard-backend/internal/repos"
	"github.com/calmtree/profilewizard-backend/internal/server"
	"github.com/calmtree/profilewizard-backend/internal/services"
	"github.com/calmtree/profilewizard-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "profilewizard-backend",
		Environment: utils.GetEnv("ENVIRONMENT", "development", log),
	})
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = otelShutdown(ctx)
	}()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Redis (optional, reads fall back to postgres)
	var progressCache redisclient.ProgressCache
	if cache, cErr := redisclient.NewProgressCache(log); cErr != nil {
		log.Warn("Redis progress cache unavailable, continuing without it", "error", cErr)
	} else {
		progressCache = cache
		defer progressCache.Close()
	}

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	stepProgressRepo := repos.NewStepProgressRepo(thePG, log)
	userEventRepo := repos.NewUserEventRepo(thePG, log)

	// Services
	log.Info("Setting up services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo)
	progressService := services.NewProgressService(thePG, log, stepProgressRepo, userEventRepo, progressCache)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	stepsHandler := handlers.NewStepsHandler()
	progressHandler := handlers.NewProgressHandler(progressService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:     authHandler,
		AuthMiddleware:  authMiddleware,
		UserHandler:     userHandler,
		StepsHandler:    stepsHandler,
		ProgressHandler: progressHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
