package main

import (
	"github.com/gin-gonic/gin"
	"github.com/saurabhtbj1201/portfolio/backend/internal/config"
	"github.com/saurabhtbj1201/portfolio/backend/internal/handlers"
	"github.com/saurabhtbj1201/portfolio/backend/internal/middleware"
	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for public write endpoints (forms, contribution requests)
	publicLimiter := middleware.NewRateLimiter(5, 10)

	db := models.GetDB()

	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	// Uploaded images are served straight off disk
	r.Static("/uploads", cfg.Uploads.Dir)

	projectHandler := handlers.NewProjectHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	submissionHandler := handlers.NewSubmissionHandler(db, svc.taskQueue)
	openSourceHandler := handlers.NewOpenSourceHandler(db)
	contributionHandler := handlers.NewContributionHandler(db, svc.taskQueue)
	settingsHandler := handlers.NewSiteSettingsHandler(db)

	api := r.Group("/api")
	{
		// Public site surface
		api.GET("/settings", settingsHandler.Get)
		api.GET("/projects", projectHandler.List)
		api.GET("/projects/:id", projectHandler.GetByID)
		api.GET("/projects/:id/reviews", reviewHandler.ListByProject)
		api.GET("/opensource", openSourceHandler.List)
		api.GET("/opensource/:slug", openSourceHandler.GetBySlug)
		api.GET("/opensource/:slug/contributors", contributionHandler.Roster)

		// Public writes carry the rate limit
		public := api.Group("", publicLimiter.Middleware())
		{
			public.POST("/projects/:id/reviews", reviewHandler.Create)
			public.POST("/contact", submissionHandler.CreateContact)
			public.POST("/enquiry", submissionHandler.CreateEnquiry)
			public.POST("/opensource/:slug/requests", contributionHandler.SubmitRequest)
		}

		api.POST("/auth/login", svc.authHandler.Login)

		// Admin back-office
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			admin.GET("/auth/me", svc.authHandler.GetCurrentUser)
			admin.POST("/auth/logout", svc.authHandler.Logout)
			admin.POST("/auth/change-password", svc.authHandler.ChangePassword)

			dashboardHandler := handlers.NewDashboardHandler(db)
			admin.GET("/dashboard/stats", dashboardHandler.GetStats)

			admin.POST("/projects", projectHandler.Create)
			admin.PUT("/projects/:id", projectHandler.Update)

			admin.GET("/reviews", reviewHandler.List)
			admin.PUT("/reviews/:id", reviewHandler.Update)

			admin.GET("/submissions", submissionHandler.List)
			admin.PUT("/submissions/:id/reviewed", submissionHandler.ToggleReviewed)

			admin.GET("/opensource/:id", openSourceHandler.GetByID)
			admin.POST("/opensource", openSourceHandler.Create)
			admin.PUT("/opensource/:id", openSourceHandler.Update)

			// Contribution workflow
			admin.GET("/opensource/:id/requests", contributionHandler.ListRequests)
			admin.GET("/opensource/:id/contributors", contributionHandler.ListContributors)
			admin.GET("/requests/:id", contributionHandler.GetRequest)
			admin.POST("/requests/:id/approve", contributionHandler.Approve)
			admin.POST("/requests/:id/reject", contributionHandler.Reject)
			admin.PUT("/contributors/:id/notes", contributionHandler.UpdateNotes)

			admin.PUT("/settings", settingsHandler.Update)

			uploadHandler := handlers.NewUploadHandler(cfg.Uploads)
			admin.POST("/uploads", uploadHandler.Upload)

			// Destructive and account operations need the admin role
			restricted := admin.Group("", middleware.AdminRequired())
			{
				restricted.DELETE("/projects/:id", projectHandler.Delete)
				restricted.DELETE("/reviews/:id", reviewHandler.Delete)
				restricted.DELETE("/submissions/:id", submissionHandler.Delete)
				restricted.DELETE("/opensource/:id", openSourceHandler.Delete)
				restricted.DELETE("/contributors/:id", contributionHandler.RemoveContributor)

				userHandler := handlers.NewUserHandler(db)
				restricted.GET("/users", userHandler.List)
				restricted.POST("/users", userHandler.Create)
				restricted.PUT("/users/:id", userHandler.Update)
				restricted.DELETE("/users/:id", userHandler.Delete)

				systemLogHandler := handlers.NewSystemLogHandler(db)
				restricted.GET("/system-logs", systemLogHandler.List)
				restricted.POST("/system-logs/cleanup", systemLogHandler.Cleanup)
			}
		}
	}
}
