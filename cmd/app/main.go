package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/csv-challenge/backend/internal/api/http"
	"github.com/csv-challenge/backend/internal/cache"
	"github.com/csv-challenge/backend/internal/config"
	"github.com/csv-challenge/backend/internal/db"
	"github.com/csv-challenge/backend/internal/doctoken"
	"github.com/csv-challenge/backend/internal/queue/asynqserver"
	queueClient "github.com/csv-challenge/backend/internal/queue/client"
	"github.com/csv-challenge/backend/internal/repository"
	"github.com/csv-challenge/backend/internal/server"
	"github.com/csv-challenge/backend/internal/service"
	"github.com/csv-challenge/backend/internal/worker"
	"github.com/csv-challenge/backend/pkg/auth"
	"github.com/csv-challenge/backend/pkg/email/smtp"
	"github.com/csv-challenge/backend/pkg/logger"
	"github.com/csv-challenge/backend/pkg/otp"

	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	appLogger.Info("starting backend api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Fatal("mysql connect problem", zap.Error(err))
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	if cfg.Database.MigrateOnStart {
		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := db.Migrate(migrateCtx, dbMySQL)
		cancel()
		if err != nil {
			appLogger.Fatal("schema bootstrap failed", zap.Error(err))
		}
		appLogger.Info("schema is up to date")
	}

	// Init redis
	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Fatal("redis connect problem", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("error when closing redis", zap.Error(err))
		}
	}()
	appLogger.Info("redis connection done")

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Error("smtp sender creation failed", zap.Error(err))
		return
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Error("auth manager creation err", zap.Error(err))
		return
	}

	otpGenerator := otp.NewGOTPGenerator()

	enqueuer := queueClient.New(redisClient)
	defer func() {
		if err := enqueuer.Close(); err != nil {
			appLogger.Error("error when closing queue client", zap.Error(err))
		}
	}()

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		TokenManager: tokenManager,
		OtpGenerator: otpGenerator,
		EmailSender:  emailSender,
		Queue:        enqueuer,
		Repos:        repos,
	})
	workers := worker.NewWorkers(worker.Deps{Services: services})

	var docsStore doctoken.Store = doctoken.NewMemoryStore()
	if cfg.Docs.Store == doctoken.StoreRedis {
		docsStore = doctoken.NewRedisStore(redisClient)
	}
	docsGate := doctoken.NewGate(docsStore, cfg.Docs.TokenTTL)

	handlers := apiHttp.NewHandlers(services, cfg, docsGate, dbMySQL, redisClient)

	// Queue workers
	queueServer, mux := asynqserver.New(cfg.Cache, workers)
	if err := queueServer.Start(mux); err != nil {
		appLogger.Fatal("queue server start failed", zap.Error(err))
	}
	appLogger.Info("queue server started")

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init())
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	queueServer.Shutdown()

	appLogger.Info("app stopped")
}
