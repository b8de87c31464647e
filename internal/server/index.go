package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mannyyy07/quickqr/web"
)

// Index serves the embedded single page UI.
func (s *Server) Index(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType, web.IndexHTML)
}
