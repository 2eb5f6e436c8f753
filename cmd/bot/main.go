package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/config"
	"github.com/diegoclair/campaign-reminder-bot/internal/database"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/service"
	"github.com/diegoclair/campaign-reminder-bot/internal/filestore"
	"github.com/diegoclair/campaign-reminder-bot/internal/handlers"
	"github.com/diegoclair/campaign-reminder-bot/internal/logger"
	"github.com/diegoclair/campaign-reminder-bot/internal/scheduler"
	"github.com/diegoclair/campaign-reminder-bot/migrator/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// app holds what both platforms share.
type app struct {
	cfg      *config.Config
	log      *zap.SugaredLogger
	dm       contract.DataManager
	services *service.Instance
	matcher  contract.TimeMatcher
	schedCfg service.SchedulerConfig
}

// platform is a running chat connection.
type platform struct {
	manager *scheduler.Manager
	slack   *handlers.SlackHandler
	close   func()
}

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Info(".env file not found, using the environment only")
	}

	reference, _ := cfg.ReferenceLocation()
	source, _ := cfg.SourceLocation()

	dm, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to open event store", "driver", cfg.StoreDriver, "error", err)
	}
	defer closeStore()

	policy := service.NewAccessPolicy(cfg.CampaignRoles, cfg.OneshotRoles, cfg.AdminRoles)

	a := &app{
		cfg:      cfg,
		log:      logger,
		dm:       dm,
		services: service.NewInstance(dm, policy, source, logger),
		matcher:  service.NewTimeMatcher(reference, cfg.MorningHour),
		schedCfg: service.SchedulerConfig{
			Reference:   reference,
			Source:      source,
			TickSpec:    cfg.TickSchedule,
			SendTimeout: cfg.SendTimeout,
		},
	}

	var p *platform
	switch cfg.Platform {
	case config.PlatformDiscord:
		p, err = a.startDiscord()
	case config.PlatformSlack:
		p, err = a.startSlack()
	}
	if err != nil {
		logger.Fatalw("Failed to start platform", "platform", cfg.Platform, "error", err)
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	handlers.RegisterRoutes(router, handlers.NewAPIHandler(a.services, logger), p.slack)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	p.manager.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error shutting down server: %v", err)
	}

	p.close()
	logger.Info("Stopped")
}

func openStore(cfg *config.Config, log *zap.SugaredLogger) (contract.DataManager, func(), error) {
	if cfg.StoreDriver == config.StoreSQLite {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}

		log.Info("Running migrations...")
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("Migrations completed successfully")

		return database.NewInstance(db), func() { db.Close() }, nil
	}

	store, err := filestore.New(cfg.DBFile)
	if err != nil {
		return nil, nil, err
	}
	log.Infow("Using JSON event store", "path", store.Path())

	return filestore.NewInstance(store), func() {}, nil
}

func (a *app) newScheduler(directory contract.Directory, notifier contract.Notifier, communityID string) (contract.ReminderScheduler, error) {
	return service.NewScheduler(a.dm, directory, notifier, a.matcher, a.schedCfg, a.log.With("community", communityID))
}
