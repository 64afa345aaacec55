package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpro/event-management-service/internal/models"
	"github.com/eventpro/event-management-service/internal/store"
)

// RegisterBookingRoutes registers the booking ledger endpoints.
//
// POST /api/book-ticket      append a confirmed booking
// GET  /api/live-sales       rolling sales summary
// GET  /api/export-bookings  full ledger as CSV download
//
// Booking deliberately accepts event ids that do not exist; see the
// ledger documentation.
func RegisterBookingRoutes(r gin.IRoutes, ledger *store.BookingLedger) {
	r.POST("/api/book-ticket", func(c *gin.Context) {
		var req models.BookTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if req.AttendeeName == "" || req.AttendeeEmail == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "attendee_name and attendee_email required"})
			return
		}

		b := ledger.Book(req)
		c.JSON(http.StatusOK, gin.H{"success": true, "booking_id": b.ID})
	})

	r.GET("/api/live-sales", func(c *gin.Context) {
		c.JSON(http.StatusOK, ledger.LiveSales())
	})

	r.GET("/api/export-bookings", func(c *gin.Context) {
		data, err := ledger.ExportCSV()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=ticket_bookings.csv")
		c.Data(http.StatusOK, "text/csv", data)
	})
}
