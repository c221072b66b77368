package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warsonwoods/jobs-backend/internal/core"
	"github.com/warsonwoods/jobs-backend/internal/middleware"
	"github.com/warsonwoods/jobs-backend/internal/models"
)

// ReviewHandler handles HTTP requests for reviews of awarded jobs.
type ReviewHandler struct {
	reviewService core.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService core.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// SubmitReview handles POST /reviews (parents only). Each job can be
// reviewed once, by its owner, after its start time has passed.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	parentID := c.GetString(middleware.ContextUserID)

	var req models.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	review, err := h.reviewService.SubmitReview(c.Request.Context(), parentID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListMyReviews handles GET /users/me/reviews: a worker reading the
// reviews written about them.
func (h *ReviewHandler) ListMyReviews(c *gin.Context) {
	workerID := c.GetString(middleware.ContextUserID)

	reviews, err := h.reviewService.ListForWorker(c.Request.Context(), workerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
