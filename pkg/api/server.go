// Package api exposes the ops HTTP surface: health, run history, job
// state, manual triggers, and Prometheus metrics. The pipeline itself
// never depends on this package.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/newsflow/hotaggr/pkg/database"
	"github.com/newsflow/hotaggr/pkg/scheduler"
	"github.com/newsflow/hotaggr/pkg/services"
)

// Server is the ops API server.
type Server struct {
	db     *database.Client
	runs   *services.ProcessingLogService
	events *services.EventService
	sched  *scheduler.Scheduler
}

// NewServer creates a new API server.
func NewServer(db *database.Client, sched *scheduler.Scheduler) *Server {
	return &Server{
		db:     db,
		runs:   services.NewProcessingLogService(db.Client),
		events: services.NewEventService(db.Client),
		sched:  sched,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/runs", s.ListRuns)
		v1.GET("/jobs", s.ListJobs)
		v1.GET("/events/:id", s.GetEvent)
		v1.POST("/aggregate", s.TriggerAggregation)
		v1.POST("/merge", s.TriggerMerge)
	}
	return r
}

// HTTPServer wraps the router in an http.Server bound to the port.
func (s *Server) HTTPServer(port int) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Router(),
	}
}
