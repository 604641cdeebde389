package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/ports"
)

// HealthResponse represents the aggregated component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// health handles GET /health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	components := s.systemHealthChecker.CheckAll(c.Request.Context())

	status, code := "healthy", http.StatusOK
	for _, component := range components {
		if component.Status != "healthy" {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, HealthResponse{Status: status, Components: components})
}
