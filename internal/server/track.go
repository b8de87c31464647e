package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	eventdomain "github.com/mannyyy07/quickqr/internal/event/domain"
)

type trackRequest struct {
	Kind      string         `json:"kind"`
	SessionID string         `json:"sessionId"`
	Payload   map[string]any `json:"payload"`
}

// Track ingests one usage event. The client emits these fire-and-forget, so
// any error response here is effectively swallowed on the other end.
func (s *Server) Track(c *gin.Context) {
	addr := clientAddress(c.Request)
	if !s.trackLimiter.Allow(eventdomain.HashAddress(addr)) {
		AbortWithError(c, ErrTooManyRequests)
		return
	}

	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	record, err := s.eventSvc.Record(c.Request.Context(), eventdomain.RecordRequest{
		Kind:      req.Kind,
		SessionID: req.SessionID,
		Payload:   req.Payload,
		ClientIP:  addr,
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if record == nil {
		// No analytics store configured; the product keeps working.
		c.JSON(http.StatusAccepted, gin.H{"stored": false})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"stored": true, "id": record.ID.String()})
}
