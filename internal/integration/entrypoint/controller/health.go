package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func(ctx *gin.Context) bool

// HealthController handles health check endpoints.
type HealthController struct {
	dbCheck    HealthChecker
	redisCheck HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbCheck, redisCheck HealthChecker) *HealthController {
	return &HealthController{
		dbCheck:    dbCheck,
		redisCheck: redisCheck,
	}
}

// Check handles GET /health requests. The endpoint reports ok as long as the
// process is serving; dependency states are informational.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.dbCheck != nil && h.dbCheck(c) {
		dbStatus = "connected"
	}

	redisStatus := "disconnected"
	if h.redisCheck != nil && h.redisCheck(c) {
		redisStatus = "connected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  dbStatus,
		Redis:     redisStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
