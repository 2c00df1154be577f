package main

//go:generate swag init -d ../../ -g internal/api/http/internal/v1/handler.go -o ../../docs

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/nzwalks/backend/internal/api/http"
	"github.com/nzwalks/backend/internal/cache"
	"github.com/nzwalks/backend/internal/config"
	"github.com/nzwalks/backend/internal/db"
	"github.com/nzwalks/backend/internal/queue/asynqserver"
	queueClient "github.com/nzwalks/backend/internal/queue/client"
	"github.com/nzwalks/backend/internal/repository"
	"github.com/nzwalks/backend/internal/server"
	"github.com/nzwalks/backend/internal/service"
	"github.com/nzwalks/backend/internal/worker"
	"github.com/nzwalks/backend/pkg/auth"
	"github.com/nzwalks/backend/pkg/logger"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting regions api", zap.String("db_driver", cfg.Database.Driver))
	logger.Debug("debug messages are enabled")

	health := apiHttp.HealthChecks{}

	// Init database
	var repos *repository.Repositories
	switch cfg.Database.Driver {
	case config.DriverMemory:
		repos = repository.NewMemoryRepositories()
		logger.Warn("using in-memory region store, data is lost on restart")
	case config.DriverMySQL:
		dbMySQL, err := db.New(cfg.Database)
		if err != nil {
			logger.Error("mysql connect problem", zap.Error(err))
			os.Exit(1)
		}
		defer func() {
			if err := dbMySQL.Close(); err != nil {
				logger.Error("error when closing", zap.Error(err))
			}
		}()
		logger.Info("mysql connection done")

		if cfg.Database.AutoMigrate {
			if err := db.Migrate(context.Background(), dbMySQL); err != nil {
				logger.Error("mysql migrate problem", zap.Error(err))
				os.Exit(1)
			}
			logger.Info("mysql schema ready")
		}

		repos = repository.NewRepositories(dbMySQL)
		health["database"] = dbMySQL.PingContext
	default:
		logger.Error("unknown db driver", zap.String("driver", cfg.Database.Driver))
		os.Exit(1)
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Error("auth manager creation err", zap.Error(err))
		os.Exit(1)
	}

	// Region change events
	var queueServer *asynq.Server
	if cfg.Queue.Enabled {
		redisClient, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			logger.Error("redis connect problem", zap.Error(err))
			os.Exit(1)
		}
		defer redisClient.Close()
		health["redis"] = func(ctx context.Context) error { return cache.Ping(ctx, redisClient) }

		asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
		defer asynqClient.Close()
		restore := queueClient.SetClient(asynqClient)
		defer restore()

		workers := worker.NewWorkers(worker.Deps{Logger: logger.Logger()})
		srv, mux := asynqserver.New(cfg, workers)
		if err := srv.Start(mux); err != nil {
			logger.Error("asynq server start failed", zap.Error(err))
			os.Exit(1)
		}
		queueServer = srv
		logger.Info("region event queue started")
	}

	// Services, Repos & API Handlers
	services := service.NewServices(service.Deps{
		Repos:       repos,
		RegionEvent: queueClient.NewRegionEventPublisher(nil),
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, health)

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(appCtx, cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}
	stopApp()

	if queueServer != nil {
		queueServer.Shutdown()
	}

	logger.Info("app stopped")
}
