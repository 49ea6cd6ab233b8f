package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hibiken/asynq"
	"github.com/saurabhtbj1201/portfolio/backend/internal/config"
	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/logger"
	"gorm.io/gorm"
)

// NotificationProcessor resolves a queued task back to its record and sends
// the matching email. It is shared between the asynq worker and the sync
// queue fallback.
type NotificationProcessor struct {
	db    *gorm.DB
	email *EmailService
}

func NewNotificationProcessor(db *gorm.DB, email *EmailService) *NotificationProcessor {
	return &NotificationProcessor{db: db, email: email}
}

func (p *NotificationProcessor) Process(ctx context.Context, task *NotificationTask) error {
	switch task.Type {
	case TaskTypeContributorApproved:
		return p.processApproval(task.ContributorID)
	case TaskTypeSubmissionReceived:
		return p.processSubmission(task.SubmissionID)
	default:
		logger.Warnf("[Notifier] Unknown task type %q, dropping", task.Type)
		return nil
	}
}

func (p *NotificationProcessor) processApproval(contributorID string) error {
	var contributor models.Contributor
	if err := p.db.First(&contributor, "id = ?", contributorID).Error; err != nil {
		// Record may have been removed between enqueue and delivery.
		logger.Warnf("[Notifier] Contributor %s not found, skipping mail: %v", contributorID, err)
		return nil
	}
	if contributor.Status != models.ContributorStatusApproved {
		logger.Infof("[Notifier] Contributor %s no longer approved, skipping mail", contributorID)
		return nil
	}

	var project models.OpenSourceProject
	if err := p.db.First(&project, "id = ?", contributor.ProjectID).Error; err != nil {
		logger.Warnf("[Notifier] Project %s not found, skipping mail: %v", contributor.ProjectID, err)
		return nil
	}

	return p.email.SendContributorApproved(&contributor, &project)
}

func (p *NotificationProcessor) processSubmission(submissionID string) error {
	var submission models.FormSubmission
	if err := p.db.First(&submission, "id = ?", submissionID).Error; err != nil {
		logger.Warnf("[Notifier] Submission %s not found, skipping mail: %v", submissionID, err)
		return nil
	}

	return p.email.SendEnquiryAlert(&submission)
}

// Worker processes async tasks from the queue
type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	processor func(context.Context, *NotificationTask) error
	wg        sync.WaitGroup
	running   bool
	mu        sync.Mutex
}

// NewWorker creates a new worker instance
func NewWorker(cfg *config.RedisConfig) *Worker {
	if !cfg.Enabled {
		return nil
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Errorf("[Worker] Error processing task %s: %v", task.Type(), err)
			}),
		},
	)

	return &Worker{
		server: server,
		mux:    asynq.NewServeMux(),
	}
}

// SetProcessor sets the function to process notification tasks
func (w *Worker) SetProcessor(processor func(context.Context, *NotificationTask) error) {
	w.processor = processor
}

// Start begins processing tasks
func (w *Worker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	w.mux.HandleFunc(TaskTypeContributorApproved, w.handleNotificationTask)
	w.mux.HandleFunc(TaskTypeSubmissionReceived, w.handleNotificationTask)

	w.running = true
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		logger.Infof("[Worker] Starting async worker...")
		if err := w.server.Run(w.mux); err != nil {
			logger.Errorf("[Worker] Server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the worker
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	logger.Infof("[Worker] Shutting down...")
	w.server.Shutdown()
	w.running = false
	w.wg.Wait()
	logger.Infof("[Worker] Shutdown complete")
}

func (w *Worker) handleNotificationTask(ctx context.Context, t *asynq.Task) error {
	var task NotificationTask
	if err := json.Unmarshal(t.Payload(), &task); err != nil {
		logger.Errorf("[Worker] Failed to unmarshal task: %v", err)
		return err
	}

	if task.Type == "" {
		task.Type = t.Type()
	}

	if w.processor == nil {
		logger.Warnf("[Worker] No processor set, dropping %s", task.Type)
		return nil
	}

	return w.processor(ctx, &task)
}

// Global worker instance
var (
	globalWorker *Worker
	workerOnce   sync.Once
)

// InitWorker initializes the global worker
func InitWorker(cfg *config.RedisConfig) *Worker {
	workerOnce.Do(func() {
		globalWorker = NewWorker(cfg)
	})
	return globalWorker
}

// GetWorker returns the global worker instance
func GetWorker() *Worker {
	return globalWorker
}
