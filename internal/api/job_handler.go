package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warsonwoods/jobs-backend/internal/core"
	"github.com/warsonwoods/jobs-backend/internal/middleware"
	"github.com/warsonwoods/jobs-backend/internal/models"
)

// JobHandler handles HTTP requests for the job lifecycle and applications.
type JobHandler struct {
	jobService         core.JobService
	applicationService core.ApplicationService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService core.JobService, applicationService core.ApplicationService) *JobHandler {
	return &JobHandler{jobService: jobService, applicationService: applicationService}
}

// CreateJob handles POST /jobs (parents only).
func (h *JobHandler) CreateJob(c *gin.Context) {
	parentID := c.GetString(middleware.ContextUserID)

	var draft models.JobDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), parentID, draft)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// UpdateJob handles PUT /jobs/:jobId (parents only, own jobs only).
// Applicants and the award are never touched by an edit.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	parentID := c.GetString(middleware.ContextUserID)
	jobID := c.Param("jobId")

	var draft models.JobDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), parentID, jobID, draft)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ArchiveJob handles POST /jobs/:jobId/archive (parents only, own jobs only).
func (h *JobHandler) ArchiveJob(c *gin.Context) {
	parentID := c.GetString(middleware.ContextUserID)
	jobID := c.Param("jobId")

	if err := h.jobService.ArchiveJob(c.Request.Context(), parentID, jobID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Job archived"})
}

// GetJob handles GET /jobs/:jobId. The full applicant list only appears
// for the posting owner.
func (h *JobHandler) GetJob(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)
	jobID := c.Param("jobId")

	job, err := h.jobService.GetJob(c.Request.Context(), callerID, jobID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListMyJobs handles GET /jobs/mine (parents only).
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	parentID := c.GetString(middleware.ContextUserID)

	jobs, err := h.jobService.ListJobsForParent(c.Request.Context(), parentID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// ListOpenJobs handles GET /jobs/open (workers only). Jobs the caller has
// already applied for are filtered out.
func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	workerID := c.GetString(middleware.ContextUserID)

	jobs, err := h.jobService.ListOpenJobsForWorker(c.Request.Context(), workerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// ListWonJobs handles GET /jobs/won (workers only).
func (h *JobHandler) ListWonJobs(c *gin.Context) {
	workerID := c.GetString(middleware.ContextUserID)

	jobs, err := h.jobService.ListWonJobs(c.Request.Context(), workerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// NextUpcomingJob handles GET /jobs/next (parents only). Returns 204 when
// the parent has no upcoming job.
func (h *JobHandler) NextUpcomingJob(c *gin.Context) {
	parentID := c.GetString(middleware.ContextUserID)

	job, err := h.jobService.NextUpcomingJob(c.Request.Context(), parentID)
	if err != nil {
		// No upcoming job is an empty dashboard card, not an error.
		if errors.Is(err, core.ErrJobNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// AwardJob handles POST /jobs/:jobId/award (parents only, own jobs only).
// The worker must be a current applicant and the job must not already be
// awarded or archived.
func (h *JobHandler) AwardJob(c *gin.Context) {
	parentID := c.GetString(middleware.ContextUserID)
	jobID := c.Param("jobId")

	var req models.AwardJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.jobService.AwardJob(c.Request.Context(), parentID, jobID, req.WorkerID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Job awarded"})
}

// Apply handles POST /jobs/:jobId/applications (workers only).
func (h *JobHandler) Apply(c *gin.Context) {
	workerID := c.GetString(middleware.ContextUserID)
	jobID := c.Param("jobId")

	if err := h.applicationService.Apply(c.Request.Context(), jobID, workerID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Application submitted"})
}

// Withdraw handles DELETE /jobs/:jobId/applications (workers only).
// Withdrawing when not applied is a no-op.
func (h *JobHandler) Withdraw(c *gin.Context) {
	workerID := c.GetString(middleware.ContextUserID)
	jobID := c.Param("jobId")

	if err := h.applicationService.Withdraw(c.Request.Context(), jobID, workerID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Application withdrawn"})
}

// ListApplicants handles GET /jobs/:jobId/applicants (parents only, own
// jobs only). Returns the applicants' profiles, not just their IDs.
func (h *JobHandler) ListApplicants(c *gin.Context) {
	parentID := c.GetString(middleware.ContextUserID)
	jobID := c.Param("jobId")

	applicants, err := h.applicationService.ListApplicants(c.Request.Context(), parentID, jobID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applicants)
}
