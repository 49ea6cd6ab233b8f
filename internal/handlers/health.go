package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"github.com/saurabhtbj1201/portfolio/backend/internal/services"
)

// HealthHandler reports subsystem status for uptime checks.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of all subsystems.
// GET /health
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	taskQueue := services.GetTaskQueue()
	queueMode := "sync"
	if taskQueue != nil && taskQueue.IsAsync() {
		queueMode = "async (Redis)"
	}

	var pendingRequests int64
	models.GetDB().Model(&models.PRRequest{}).
		Where("status = ?", models.RequestStatusPending).
		Count(&pendingRequests)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "portfolio-backend",
		"components": gin.H{
			"database":         dbStatus,
			"queue_mode":       queueMode,
			"pending_requests": pendingRequests,
		},
	})
}
