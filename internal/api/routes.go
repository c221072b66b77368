package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warsonwoods/jobs-backend/internal/core"
	"github.com/warsonwoods/jobs-backend/internal/middleware"
	"github.com/warsonwoods/jobs-backend/internal/models"
)

// Handlers bundles the API handlers for route registration.
type Handlers struct {
	User   *UserHandler
	Job    *JobHandler
	Review *ReviewHandler
	Worker *WorkerHandler
	Parent *ParentHandler
	Stats  *StatsHandler
}

// SetupRoutes configures all API routes under /api/v1. Everything except
// the health check requires a verified Firebase ID token; role-scoped
// routes additionally require a parent or worker profile.
func SetupRoutes(router *gin.Engine, h Handlers, authMW *middleware.AuthMiddleware, userService core.UserService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(authMW.VerifyToken())

	parentOnly := middleware.RequireRole(userService, models.RoleParent)
	workerOnly := middleware.RequireRole(userService, models.RoleWorker)

	users := v1.Group("/users")
	{
		users.POST("", h.User.CreateProfile)
		users.GET("/me", h.User.GetMyProfile)
		users.PUT("/me", h.User.UpdateMyProfile)
		users.POST("/me/photo", h.User.UploadPhoto)
		users.POST("/me/devices", h.User.RegisterDevice)
		users.GET("/me/reviews", workerOnly, h.Review.ListMyReviews)
	}

	jobs := v1.Group("/jobs")
	{
		jobs.POST("", parentOnly, h.Job.CreateJob)
		jobs.GET("/mine", parentOnly, h.Job.ListMyJobs)
		jobs.GET("/open", workerOnly, h.Job.ListOpenJobs)
		jobs.GET("/won", workerOnly, h.Job.ListWonJobs)
		jobs.GET("/next", parentOnly, h.Job.NextUpcomingJob)
		jobs.GET("/:jobId", h.Job.GetJob)
		jobs.PUT("/:jobId", parentOnly, h.Job.UpdateJob)
		jobs.POST("/:jobId/archive", parentOnly, h.Job.ArchiveJob)
		jobs.POST("/:jobId/award", parentOnly, h.Job.AwardJob)
		jobs.POST("/:jobId/applications", workerOnly, h.Job.Apply)
		jobs.DELETE("/:jobId/applications", workerOnly, h.Job.Withdraw)
		jobs.GET("/:jobId/applicants", parentOnly, h.Job.ListApplicants)
	}

	v1.POST("/reviews", parentOnly, h.Review.SubmitReview)

	workers := v1.Group("/workers")
	{
		workers.GET("", parentOnly, h.Worker.ListWorkers)
		workers.GET("/rankings", parentOnly, h.Worker.Rankings)
		workers.GET("/:workerId", parentOnly, h.Worker.GetWorker)
		workers.GET("/:workerId/reviews", parentOnly, h.Worker.ListWorkerReviews)
	}

	parents := v1.Group("/parents")
	{
		parents.GET("", workerOnly, h.Parent.ListParents)
		parents.GET("/:parentId", workerOnly, h.Parent.GetParent)
	}

	stats := v1.Group("/stats")
	{
		stats.GET("/jobs/monthly", parentOnly, h.Stats.JobsByMonth)
		stats.GET("/me/monthly", workerOnly, h.Stats.MyJobsByMonth)
	}
}
