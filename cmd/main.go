package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/yungbote/portfolio-backend/internal/clients/devto"
	"github.com/yungbote/portfolio-backend/internal/dataset"
	"github.com/yungbote/portfolio-backend/internal/db"
	httpserver "github.com/yungbote/portfolio-backend/internal/http"
	"github.com/yungbote/portfolio-backend/internal/http/handlers"
	"github.com/yungbote/portfolio-backend/internal/http/middleware"
	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/repos"
	"github.com/yungbote/portfolio-backend/internal/services"
	"github.com/yungbote/portfolio-backend/internal/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
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

	// Env
	log.Info("Loading environment variables...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	devtoBaseURL := utils.GetEnv("DEVTO_BASE_URL", devto.DefaultBaseURL, log)
	devtoUsername := utils.GetEnv("DEVTO_USERNAME", "samokafor", log)
	devtoTimeoutSeconds := utils.GetEnvAsInt("DEVTO_TIMEOUT_SECONDS", devto.DefaultTimeoutSeconds, log)

	// Static dataset: a load failure here is fatal, there is no per-request
	// error path once the process is serving.
	log.Info("Loading bundled dataset...")
	snapshot, err := dataset.Load()
	if err != nil {
		log.Fatal("Failed to load bundled dataset", "error", err)
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	educationRepo := repos.NewEducationRepo(thePG, log)
	experienceRepo := repos.NewExperienceRepo(thePG, log)
	publicationRepo := repos.NewPublicationRepo(thePG, log)

	// Services
	log.Info("Setting up services...")
	contentService := services.NewContentService(log, snapshot)
	devtoClient := devto.NewClient(log, devtoBaseURL, devtoUsername, devtoTimeoutSeconds)
	blogService := services.NewBlogService(log, devtoClient)
	adminService := services.NewAdminService(thePG, log, educationRepo, experienceRepo, publicationRepo)
	sessionService := services.NewSessionService(log, jwtSecretKey)

	// Handlers
	log.Info("Setting up handlers...")
	healthHandler := handlers.NewHealthHandler()
	portfolioHandler := handlers.NewPortfolioHandler(contentService)
	blogHandler := handlers.NewBlogHandler(log, blogService)
	adminHandler := handlers.NewAdminHandler(log, adminService)

	// Middleware
	log.Info("Setting up middleware...")
	sessionGate := middleware.NewSessionGate(log, sessionService, middleware.PathPrefix(httpserver.AdminPrefix))

	// Router
	log.Info("Setting up router...")
	server := httpserver.NewServer(httpserver.RouterConfig{
		Log:              log,
		SessionGate:      sessionGate,
		HealthHandler:    healthHandler,
		PortfolioHandler: portfolioHandler,
		BlogHandler:      blogHandler,
		AdminHandler:     adminHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := server.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
