package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetAnalyticsHandler handles the request to get search analytics data
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.analytics.GetDashboardData())
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-directory",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}
