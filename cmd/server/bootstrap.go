package main

import (
	"github.com/saurabhtbj1201/portfolio/backend/internal/config"
	"github.com/saurabhtbj1201/portfolio/backend/internal/handlers"
	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"github.com/saurabhtbj1201/portfolio/backend/internal/services"
	"github.com/saurabhtbj1201/portfolio/backend/internal/utils"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/logger"
)

// appServices holds the initialized services and handlers the router needs.
type appServices struct {
	taskQueue   services.TaskQueue
	worker      *services.Worker
	scheduler   *services.Scheduler
	authHandler *handlers.AuthHandler
}

// bootstrap initializes all application dependencies: database, services,
// the notification queue and the maintenance scheduler.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	services.InitSystemLogger(models.GetDB())

	// Notification delivery: asynq when Redis is enabled, in-process otherwise
	emailService := services.NewEmailService(cfg.SMTP)
	processor := services.NewNotificationProcessor(models.GetDB(), emailService)
	taskQueue := services.InitTaskQueue(cfg)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(processor.Process)
	}

	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(processor.Process)
			worker.Start()
		}
	}

	// Nightly count reconciliation and log retention
	contributionService := services.NewContributionService(models.GetDB(), taskQueue)
	scheduler := services.NewScheduler(models.GetDB(), contributionService)
	scheduler.Start()

	authHandler := handlers.NewAuthHandler(models.GetDB(), cfg)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		taskQueue:   taskQueue,
		worker:      worker,
		scheduler:   scheduler,
		authHandler: authHandler,
	}
}

// shutdown gracefully stops background services.
func (s *appServices) shutdown() {
	s.scheduler.Stop()

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
	logger.Info().Msg("All background services stopped")
}
