package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    func() bool
	redisHealthChecker func() bool
	now                func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil redisHealthChecker reports the batch-run store as disabled.
func NewHealthController(dbHealthChecker, redisHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		redisHealthChecker: redisHealthChecker,
		now:                time.Now,
	}
}

// Check handles GET /health requests.
// Status is "degraded" when the database is unreachable.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  "disconnected",
		Redis:     "disabled",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}

	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		response.Database = "connected"
	} else {
		response.Status = "degraded"
	}

	if h.redisHealthChecker != nil {
		response.Redis = "disconnected"
		if h.redisHealthChecker() {
			response.Redis = "connected"
		}
	}

	c.JSON(http.StatusOK, response)
}
