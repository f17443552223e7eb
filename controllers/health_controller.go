package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck pings a dependency
type HealthCheck func(ctx context.Context) error

// HealthController serves GET /health
type HealthController struct {
	checks map[string]HealthCheck
}

// NewHealthController creates a HealthController running the named checks
func NewHealthController(checks map[string]HealthCheck) *HealthController {
	return &HealthController{checks: checks}
}

// Health reports "healthy" when every check passes and 503 otherwise
func (ctrl *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(ctrl.checks))
	for name, check := range ctrl.checks {
		if err := check(ctx); err != nil {
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "degraded"
	}
	c.JSON(status, gin.H{
		"status":  overall,
		"service": "adventour",
		"checks":  results,
	})
}
