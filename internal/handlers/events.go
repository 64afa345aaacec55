package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpro/event-management-service/internal/models"
	"github.com/eventpro/event-management-service/internal/store"
)

// RegisterEventRoutes registers event CRUD and lifecycle endpoints.
//
// GET  /api/events               list all events
// POST /api/create-event         create an event
// POST /api/events/:id/go-live   transition to live
// POST /api/events/:id/end-event transition to completed
// GET  /api/events/:id/status    current status + lifecycle timestamps
func RegisterEventRoutes(r gin.IRoutes, events *store.EventStore) {
	r.GET("/api/events", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"events": events.List()})
	})

	r.POST("/api/create-event", func(c *gin.Context) {
		var req models.CreateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "title required"})
			return
		}

		ev := events.Create(req)
		c.JSON(http.StatusOK, gin.H{"success": true, "event_id": ev.ID})
	})

	r.POST("/api/events/:id/go-live", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		if _, err := events.GoLive(id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event is now live"})
	})

	r.POST("/api/events/:id/end-event", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		if _, err := events.End(id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event ended successfully"})
	})

	r.GET("/api/events/:id/status", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		ev, err := events.Get(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}

		var liveStart any
		if ev.LiveStartTime != "" {
			liveStart = ev.LiveStartTime
		}
		var endTime any
		if ev.EndTime != "" {
			endTime = ev.EndTime
		}
		c.JSON(http.StatusOK, gin.H{
			"status":          ev.Status,
			"live_start_time": liveStart,
			"end_time":        endTime,
		})
	})
}
