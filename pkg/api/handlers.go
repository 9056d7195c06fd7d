package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/newsflow/hotaggr/pkg/database"
	"github.com/newsflow/hotaggr/pkg/services"
	"github.com/newsflow/hotaggr/pkg/version"
)

// Job names as registered by the serve command.
const (
	JobAggregation      = "aggregation"
	JobIncrementalMerge = "incremental-merge"
	JobDailyMerge       = "daily-merge"
	JobLabeling         = "labeling"
	JobCleanup          = "cleanup"
	JobIngestionCheck   = "ingestion-check"
)

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}

// ListRuns handles GET /api/v1/runs.
func (s *Server) ListRuns(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	runs, err := s.runs.RecentRuns(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// ListJobs handles GET /api/v1/jobs.
func (s *Server) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jobs": s.sched.State()})
}

// GetEvent handles GET /api/v1/events/:id.
func (s *Server) GetEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	evt, err := s.events.Get(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load event"})
		return
	}
	c.JSON(http.StatusOK, evt)
}

// TriggerAggregation handles POST /api/v1/aggregate. The run happens on
// the scheduler's single-flight job; a run already in progress is a 409.
func (s *Server) TriggerAggregation(c *gin.Context) {
	s.trigger(c, JobAggregation)
}

// TriggerMerge handles POST /api/v1/merge.
func (s *Server) TriggerMerge(c *gin.Context) {
	s.trigger(c, JobIncrementalMerge)
}

func (s *Server) trigger(c *gin.Context, job string) {
	if !s.sched.TriggerNow(context.WithoutCancel(c.Request.Context()), job) {
		c.JSON(http.StatusConflict, gin.H{"error": "job already running or unknown", "job": job})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"triggered": job})
}
