package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness and whether the analytics store is configured.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"analytics_store": s.db != nil,
	})
}
