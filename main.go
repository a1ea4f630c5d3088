// File: vetchat/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetchat/config"
	"vetchat/cron"
	"vetchat/database"
	appointmentRepo "vetchat/database/repository/appointment"
	conversationRepo "vetchat/database/repository/conversation"
	"vetchat/handlers"
	"vetchat/middleware"
	"vetchat/routes"
	"vetchat/services/dialogue"
	ai "vetchat/services/intelligence"
	"vetchat/services/tasks"
	"vetchat/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitDialogueCache()

	generator, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	convRepo := conversationRepo.NewMongoConversationRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	reminderService := tasks.NewReminderService()
	candidateCache := dialogue.NewRedisCandidateCache(utils.GetDialogueCacheClient(), 30*time.Minute)
	engine := dialogue.NewDefaultDialogueEngine(
		convRepo,
		apptRepo,
		generator,
		candidateCache,
		reminderService,
		config.AppConfig.IntentKeywords,
		time.Duration(config.AppConfig.GenerationTimeoutSecs)*time.Second,
		logger,
	)

	cron.InitReminderWorker()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetDialogueCacheClient()},
		database.MongoClient,
	)

	chatHandler := handlers.NewChatHandler(engine, convRepo, logger)
	apptHandler := handlers.NewAppointmentHandler(apptRepo, logger)

	routes.RegisterRoutes(router, chatHandler, apptHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
