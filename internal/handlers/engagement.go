package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpro/event-management-service/internal/models"
	"github.com/eventpro/event-management-service/internal/store"
)

// RegisterEngagementRoutes registers poll, Q&A, and engagement
// endpoints for a single event, plus the legacy dashboard polls
// endpoint.
func RegisterEngagementRoutes(r gin.IRoutes, engagement *store.EngagementStore) {
	r.GET("/api/events/:id/polls", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "polls": engagement.Polls(id)})
	})

	r.POST("/api/events/:id/polls", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		var req models.CreatePollRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON payload"})
			return
		}
		if req.Question == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "question required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "poll": engagement.CreatePoll(id, req)})
	})

	r.POST("/api/events/:id/polls/:poll_id/vote", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Poll not found"})
			return
		}
		pollID, err := pathID(c, "poll_id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Poll not found"})
			return
		}
		var req models.VoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON payload"})
			return
		}

		poll, err := engagement.Vote(id, pollID, req.Option)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Poll not found"})
		case errors.Is(err, store.ErrInvalidOption):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid option"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "poll": poll})
		}
	})

	r.GET("/api/events/:id/qa-questions", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "questions": engagement.Questions(id)})
	})

	r.POST("/api/events/:id/qa-questions", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		var req models.CreateQuestionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON payload"})
			return
		}
		if req.Question == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "question required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "question": engagement.CreateQuestion(id, req.Question)})
	})

	r.GET("/api/events/:id/engagement", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		snap := engagement.Snapshot(id)
		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"live_attendance": snap.LiveAttendance,
			"active_polls":    snap.ActivePolls,
			"qa_questions":    snap.QAQuestions,
			"engagement_rate": snap.EngagementRate,
			"polls":           snap.Polls,
			"questions":       snap.Questions,
			"breakdown":       snap.Breakdown,
		})
	})

	r.POST("/api/events/:id/engagement", func(c *gin.Context) {
		id, err := pathID(c, "id")
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		var upd models.EngagementUpdate
		if err := bindStrict(c, &upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		engagement.Merge(id, upd)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	registerLegacyPolls(r)
}

// registerLegacyPolls keeps the pre-per-event polls endpoint alive for
// older dashboard builds. GET serves fixed samples; POST answers 201
// with a stub that is not stored anywhere.
func registerLegacyPolls(r gin.IRoutes) {
	r.GET("/api/polls", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"polls": []gin.H{
			{"id": 1, "question": "What's your favorite session topic?", "responses": 145, "active": true},
			{"id": 2, "question": "Rate the venue quality", "responses": 89, "active": false},
		}})
	})

	r.POST("/api/polls", func(c *gin.Context) {
		var req models.CreatePollRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON payload"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Poll created successfully",
			"poll": gin.H{
				"id":        1,
				"question":  req.Question,
				"responses": 0,
				"active":    true,
			},
		})
	})
}
