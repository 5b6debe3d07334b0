// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storeHealthChecker  func() bool
	brokerHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Broker    string `json:"broker,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// brokerHealthChecker may be nil when change relay is disabled.
func NewHealthController(storeHealthChecker, brokerHealthChecker func() bool) *HealthController {
	return &HealthController{
		storeHealthChecker:  storeHealthChecker,
		brokerHealthChecker: brokerHealthChecker,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	storeStatus := "disconnected"
	if h.storeHealthChecker != nil && h.storeHealthChecker() {
		storeStatus = "connected"
	}

	response := HealthResponse{
		Status:    "ok",
		Store:     storeStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.brokerHealthChecker != nil {
		response.Broker = "disconnected"
		if h.brokerHealthChecker() {
			response.Broker = "connected"
		}
	}

	c.JSON(http.StatusOK, response)
}
