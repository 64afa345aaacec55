package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpro/event-management-service/internal/analytics"
	"github.com/eventpro/event-management-service/internal/auth"
	"github.com/eventpro/event-management-service/internal/handlers"
	"github.com/eventpro/event-management-service/internal/store"
)

// Stores bundles the state the router serves. All instances are shared
// across requests; each store serializes its own mutations.
type Stores struct {
	Events     *store.EventStore
	Engagement *store.EngagementStore
	Tickets    *store.TicketStore
	Bookings   *store.BookingLedger
}

// NewRouter wires the full HTTP surface: login, event lifecycle,
// engagement, tickets, bookings, and reporting.
func NewRouter(verifier auth.Verifier, st Stores) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	// Mirror the error contract: anything that blows up mid-request is a
	// 400 with an error message, never a process crash.
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": fmt.Sprint(err)})
	}))

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sessions := auth.NewSessions()
	facade := analytics.New(st.Events)

	handlers.RegisterAuthRoutes(r, verifier, sessions)
	handlers.RegisterEventRoutes(r, st.Events)
	handlers.RegisterEngagementRoutes(r, st.Engagement)
	handlers.RegisterTicketRoutes(r, st.Tickets)
	handlers.RegisterBookingRoutes(r, st.Bookings)
	handlers.RegisterAnalyticsRoutes(r, facade)

	return r
}
