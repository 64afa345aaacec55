package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventpro/event-management-service/internal/analytics"
)

// exportableTypes are the report kinds the export stub accepts.
var exportableTypes = map[string]bool{
	"revenue":    true,
	"feedback":   true,
	"engagement": true,
}

// RegisterAnalyticsRoutes registers the read-only reporting endpoints.
func RegisterAnalyticsRoutes(r gin.IRoutes, facade *analytics.Facade) {
	r.GET("/api/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, facade.Dashboard())
	})

	r.GET("/api/events/:id/analytics", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		a, err := facade.EventAnalytics(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusOK, a)
	})

	r.GET("/api/analytics/revenue", func(c *gin.Context) {
		c.JSON(http.StatusOK, facade.Revenue())
	})

	r.GET("/api/analytics/engagement", func(c *gin.Context) {
		c.JSON(http.StatusOK, facade.Engagement())
	})

	r.GET("/api/feedback", func(c *gin.Context) {
		c.JSON(http.StatusOK, facade.Feedback())
	})

	r.GET("/api/live-updates", func(c *gin.Context) {
		c.JSON(http.StatusOK, facade.LiveUpdates())
	})

	// Export stub: reports a download URL without generating the file.
	r.GET("/api/export/:data_type", func(c *gin.Context) {
		dataType := c.Param("data_type")
		if !exportableTypes[dataType] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data type"})
			return
		}
		label := strings.ToUpper(dataType[:1]) + dataType[1:]
		c.JSON(http.StatusOK, gin.H{
			"message":      fmt.Sprintf("%s data exported successfully", label),
			"download_url": fmt.Sprintf("/downloads/%s.csv", dataType),
		})
	})
}
