package services

import (
	"github.com/robfig/cron/v3"
	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/logger"
	"gorm.io/gorm"
)

// Scheduler runs the periodic maintenance jobs: system log retention and
// the nightly contributor count reconciliation.
type Scheduler struct {
	db            *gorm.DB
	cronScheduler *cron.Cron
	contribution  *ContributionService
	systemLog     *SystemLogService
}

func NewScheduler(db *gorm.DB, contribution *ContributionService) *Scheduler {
	return &Scheduler{
		db:           db,
		contribution: contribution,
		systemLog:    NewSystemLogService(db),
	}
}

func (s *Scheduler) Start() {
	s.cronScheduler = cron.New()

	// 03:00 — recount contributor caches from source rows
	if _, err := s.cronScheduler.AddFunc("0 3 * * *", s.ReconcileContributorCounts); err != nil {
		logger.Errorf("[Scheduler] failed to register reconcile job: %v", err)
	}
	// 04:00 — prune old system logs
	if _, err := s.cronScheduler.AddFunc("0 4 * * *", s.systemLog.RunCleanup); err != nil {
		logger.Errorf("[Scheduler] failed to register log cleanup job: %v", err)
	}

	s.cronScheduler.Start()
	logger.Infof("[Scheduler] started")
}

func (s *Scheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}

// ReconcileContributorCounts recomputes contributor_count for every open
// source project. The workflow keeps counts consistent transactionally;
// this job exists to repair drift introduced outside the API (manual SQL,
// restored backups) and to log when it finds any.
func (s *Scheduler) ReconcileContributorCounts() {
	var projects []models.OpenSourceProject
	if err := s.db.Find(&projects).Error; err != nil {
		logger.Errorf("[Scheduler] reconcile: failed to list projects: %v", err)
		return
	}

	repaired := 0
	for _, p := range projects {
		var count int64
		if err := s.db.Model(&models.Contributor{}).
			Where("project_id = ? AND status = ?", p.ID, models.ContributorStatusApproved).
			Count(&count).Error; err != nil {
			logger.Errorf("[Scheduler] reconcile: count failed for %s: %v", p.ID, err)
			continue
		}

		if int(count) == p.ContributorCount {
			continue
		}

		if err := s.contribution.RecountProject(p.ID); err != nil {
			logger.Errorf("[Scheduler] reconcile: recount failed for %s: %v", p.ID, err)
			continue
		}
		repaired++
		LogWarning("Contributors", "Reconcile",
			"repaired contributor_count drift on "+p.Slug, nil, "", "",
			map[string]interface{}{"project_id": p.ID, "was": p.ContributorCount, "now": count})
	}

	if repaired > 0 {
		logger.Warnf("[Scheduler] reconcile repaired %d project counts", repaired)
	}
}
