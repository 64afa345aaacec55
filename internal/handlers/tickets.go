package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpro/event-management-service/internal/models"
	"github.com/eventpro/event-management-service/internal/store"
)

// RegisterTicketRoutes registers per-event ticket-sales endpoints.
// A POST also mirrors the sold total into the engagement store; that
// coupling lives inside TicketStore.Merge so both stores move together.
func RegisterTicketRoutes(r gin.IRoutes, tickets *store.TicketStore) {
	r.GET("/api/events/:id/tickets", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "tickets": tickets.Bundle(id)})
	})

	r.POST("/api/events/:id/tickets", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		var upd models.TicketUpdate
		if err := bindStrict(c, &upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		tickets.Merge(id, upd)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
