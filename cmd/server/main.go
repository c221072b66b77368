package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/warsonwoods/jobs-backend/internal/api"
	"github.com/warsonwoods/jobs-backend/internal/config"
	"github.com/warsonwoods/jobs-backend/internal/core"
	"github.com/warsonwoods/jobs-backend/internal/db"
	"github.com/warsonwoods/jobs-backend/internal/middleware"
	"github.com/warsonwoods/jobs-backend/internal/push"
	"github.com/warsonwoods/jobs-backend/pkg/cache"
	"github.com/warsonwoods/jobs-backend/pkg/mailer"
)

func main() {
	// .env is a local development convenience; in deployment the variables
	// come from the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file.")
	}

	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load application configuration: %v", err)
	}

	var zapLogger *zap.Logger
	if strings.EqualFold(appConfig.GinMode, "release") {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		zapLogger.Fatal("Failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK initialized", zap.String("project", appConfig.FirebaseProjectID))

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	messagingClient := db.GetMessagingClient()
	bucket, bucketName := db.GetStorageBucket()
	if firestoreClient == nil || firebaseAuthClient == nil || messagingClient == nil || bucket == nil {
		zapLogger.Fatal("Firebase clients are nil after initialization. Application cannot start.")
	}
	defer firestoreClient.Close()

	// Repositories.
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	jobRepo := db.NewFirestoreJobRepository(firestoreClient)
	reviewRepo := db.NewFirestoreReviewRepository(firestoreClient)
	tokenRepo := db.NewFirestoreDeviceTokenRepository(firestoreClient)
	objectStore := db.NewGCSObjectStore(bucket, bucketName)

	// Optional Redis cache for the rankings view. The service falls back to
	// direct Firestore scans when no cache is configured.
	var rankingsCache cache.Cache
	if appConfig.RedisAddr != "" {
		rankingsCache, err = cache.NewRedisCache(initCtx, cache.NewRedisCacheConfig{
			Address:  appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		zapLogger.Info("Redis cache connected", zap.String("addr", appConfig.RedisAddr))
	} else {
		zapLogger.Warn("REDIS_ADDR not set; worker rankings will not be cached.")
	}

	// Optional SMTP mailer for the courtesy email on award.
	var awardMailer mailer.Mailer
	if appConfig.MailEnabled() {
		awardMailer, err = mailer.NewSMTPMailer(mailer.NewSMTPMailerConfig{
			Host:     appConfig.SMTPHost,
			Port:     appConfig.SMTPPort,
			Username: appConfig.SMTPUsername,
			Password: appConfig.SMTPPassword,
			Sender:   appConfig.SMTPSender,
		})
		if err != nil {
			zapLogger.Fatal("Failed to configure SMTP mailer", zap.Error(err))
		}
		zapLogger.Info("SMTP mailer configured", zap.String("host", appConfig.SMTPHost))
	} else {
		zapLogger.Warn("SMTP not configured; award emails disabled.")
	}

	// Services.
	notificationService := core.NewNotificationService(tokenRepo, userRepo, push.NewFCMSender(messagingClient), awardMailer)
	userService := core.NewUserService(userRepo)
	jobService := core.NewJobService(jobRepo, userRepo, notificationService)
	applicationService := core.NewApplicationService(jobRepo, userRepo, notificationService)
	reviewService := core.NewReviewService(reviewRepo, jobRepo, userRepo)
	rankingService := core.NewRankingService(reviewRepo, userRepo, rankingsCache)
	statsService := core.NewStatsService(jobRepo)
	photoService := core.NewPhotoService(objectStore, userRepo)

	if strings.EqualFold(appConfig.GinMode, "release") {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured.")
	}

	api.SetupRoutes(router, api.Handlers{
		User:   api.NewUserHandler(userService, photoService, notificationService),
		Job:    api.NewJobHandler(jobService, applicationService),
		Review: api.NewReviewHandler(reviewService),
		Worker: api.NewWorkerHandler(userService, rankingService, reviewService),
		Parent: api.NewParentHandler(userService),
		Stats:  api.NewStatsHandler(statsService),
	}, middleware.NewAuthMiddleware(firebaseAuthClient), userService)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
