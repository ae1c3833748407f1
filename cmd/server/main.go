package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rawdati/internal/cache"
	"rawdati/internal/config"
	"rawdati/internal/repository"
	"rawdati/internal/service"
	"rawdati/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	aiConfig := config.DefaultAIConfig()
	log.Printf("Analysis model: %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("Analysis API key: configured")
	} else {
		log.Println("Analysis API key: NOT SET (using placeholder analysis)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	surveyRepo := repository.NewSurveyRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	// Initialize caches
	resultsCache := cache.NewResultsCache(rdb)
	dashboardCache := cache.NewDashboardCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	surveySvc := service.NewSurveyService(surveyRepo)
	responseSvc := service.NewResponseService(surveyRepo, responseRepo, resultsCache)
	resultSvc := service.NewResultService(surveyRepo, responseRepo, resultsCache)
	dashboardSvc := service.NewDashboardService(surveyRepo, responseRepo, dashboardCache)
	analysisSvc := service.NewAnalysisService()
	exportSvc := service.NewExportService(resultSvc, analysisSvc, cfg.ExportTimeout)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		SurveyService:    surveySvc,
		ResponseService:  responseSvc,
		ResultService:    resultSvc,
		DashboardService: dashboardSvc,
		ExportService:    exportSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/surveys")
		log.Println("  POST /v1/surveys/{surveyId}/responses")
		log.Println("  GET  /v1/surveys/{surveyId}/results")
		log.Println("  GET  /v1/surveys/{surveyId}/charts")
		log.Println("  POST /v1/surveys/{surveyId}/export")
		log.Println("  GET  /v1/dashboard/stats")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
