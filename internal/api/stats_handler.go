package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warsonwoods/jobs-backend/internal/core"
	"github.com/warsonwoods/jobs-backend/internal/middleware"
)

// StatsHandler handles the dashboard chart aggregations.
type StatsHandler struct {
	statsService core.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService core.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// JobsByMonth handles GET /stats/jobs/monthly (parents only): jobs entered
// in the community over the last six months, bucketed by month.
func (h *StatsHandler) JobsByMonth(c *gin.Context) {
	counts, err := h.statsService.JobsByMonth(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

// MyJobsByMonth handles GET /stats/me/monthly (workers only): jobs awarded
// to the caller over the last five months, bucketed by month.
func (h *StatsHandler) MyJobsByMonth(c *gin.Context) {
	workerID := c.GetString(middleware.ContextUserID)

	counts, err := h.statsService.WorkerJobsByMonth(c.Request.Context(), workerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}
