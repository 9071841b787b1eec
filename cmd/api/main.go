package main

import (
	"context"
	"log"

	"scipress-events/config"
	"scipress-events/internal/events"
	"scipress-events/internal/handler"
	"scipress-events/internal/repository"
	"scipress-events/internal/server"
	"scipress-events/internal/services"
	"scipress-events/internal/storage"
	"scipress-events/internal/websocket"
	"scipress-events/pkg/database"
	pkgevents "scipress-events/pkg/events"
	"scipress-events/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)

	events.SetBaseURL(cfg.BaseURL)

	// Connect to Database
	database.Connect(cfg)

	broker := pkgevents.NewRedisBroker(cfg.RedisHost+":"+cfg.RedisPort, cfg.RedisPassword, 0)
	defer broker.Close()

	eventRepo := repository.NewEventRepository(database.DB)
	notifRepo := repository.NewNotificationRepository(database.DB)
	outboxRepo := repository.NewOutboxRepository(database.DB)
	feedbackRepo := repository.NewFeedbackRepository(database.DB)
	historyRepo := repository.NewHistoryRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)

	// The dispatch table is built once, before the first request.
	bus := events.NewBus(l)
	services.NewEventRecorder(eventRepo, l).Register(bus)
	services.NewEmailService(outboxRepo, cfg.AdminEmail, l).Register(bus)
	services.NewHistoryService(historyRepo, l).Register(bus)
	services.NewNotificationService(notifRepo, userRepo, broker, nil, l).Register(bus)

	worker := services.NewOutboxWorker(outboxRepo, &services.LogEmailSender{From: cfg.EmailFrom, Log: l}, l)
	worker.Start()
	defer worker.Stop()

	var archiver services.ScreenshotArchiver
	if cfg.S3Bucket != "" {
		s3Client, err := storage.NewClient(context.Background(), storage.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		})
		if err != nil {
			log.Fatalf("Failed to initialize S3 client: %v", err)
		}
		archiver = s3Client
	}

	feedbackService := services.NewFeedbackService(feedbackRepo, bus, archiver, l)
	authService := services.NewAuthService(cfg.JWTSecret, cfg.APIKeyHashes)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := websocket.NewHub()
	go hub.Run(ctx)
	bridge := websocket.NewRedisBridge(broker, hub)
	if err := bridge.Run(ctx); err != nil {
		log.Fatalf("Failed to start notification bridge: %v", err)
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Feedback:     handler.NewFeedbackHandler(feedbackService),
		Notification: handler.NewNotificationHandler(notifRepo),
		Event:        handler.NewEventHandler(bus, eventRepo),
		History:      handler.NewHistoryHandler(historyRepo),
		WS:           websocket.NewHandler(authService, hub),
	}, authService)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}

	// Let in-flight handlers drain before the process exits.
	bus.Wait()
}
