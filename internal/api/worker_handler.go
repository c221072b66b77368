package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warsonwoods/jobs-backend/internal/core"
)

// WorkerHandler handles the parent-facing worker directory, rankings and
// per-worker review listings.
type WorkerHandler struct {
	userService    core.UserService
	rankingService core.RankingService
	reviewService  core.ReviewService
}

// NewWorkerHandler creates a new WorkerHandler.
func NewWorkerHandler(userService core.UserService, rankingService core.RankingService, reviewService core.ReviewService) *WorkerHandler {
	return &WorkerHandler{
		userService:    userService,
		rankingService: rankingService,
		reviewService:  reviewService,
	}
}

// ListWorkers handles GET /workers, newest members first.
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	workers, err := h.userService.ListWorkers(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workers)
}

// Rankings handles GET /workers/rankings. Workers with no reviews do not
// appear; ties on average rating go to the worker with more reviews.
func (h *WorkerHandler) Rankings(c *gin.Context) {
	rankings, err := h.rankingService.RankWorkers(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rankings)
}

// GetWorker handles GET /workers/:workerId.
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	worker, err := h.userService.GetByID(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// ListWorkerReviews handles GET /workers/:workerId/reviews.
func (h *WorkerHandler) ListWorkerReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListForWorker(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
