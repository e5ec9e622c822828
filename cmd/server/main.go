package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "gearshare-backend/internal/api/http"
	"gearshare-backend/internal/config"
	"gearshare-backend/internal/db"
	"gearshare-backend/internal/jobs"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/repository/postgres"
	"gearshare-backend/internal/scheduler"
	"gearshare-backend/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; real deployments use the environment
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GearShare backend...", "log_level", cfg.Log.Level, "address", cfg.GetServerAddress())

	conn, err := db.Connect(cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer conn.Close()
	logger.Info("Database connection established")

	if err := db.RunMigrations(conn, cfg.Database.MigrationsPath); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := postgres.NewStore(conn)
	clock := service.SystemClock()

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	bookingSvc := service.NewBookingService(store.BookingRepository, store.ItemRepository, store.UserRepository, emailSvc, clock)
	itemSvc := service.NewItemService(store.ItemRepository, store.UserRepository, store.CommentRepository, bookingSvc, clock)
	userSvc := service.NewUserService(store.UserRepository)
	requestSvc := service.NewRequestService(store.ItemRequestRepository, store.UserRepository, clock)

	jobRunner := jobs.NewJobRunner(store.BookingRepository, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	router := api.NewRouter(bookingSvc, itemSvc, userSvc, requestSvc)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
