package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mannyyy07/quickqr/internal/qr"
)

type generateRequest struct {
	URL    string `json:"url"`
	Size   int    `json:"size"`
	Margin *int   `json:"margin"`
}

// Generate normalizes the submitted URL and renders both QR encodings.
func (s *Server) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	normalized, ok := qr.NormalizeURL(req.URL)
	if !ok {
		AbortWithError(c, newValidationError("invalid_url", "a valid http(s) URL is required"))
		return
	}

	margin := qr.DefaultMargin
	if req.Margin != nil {
		margin = *req.Margin
	}

	render, err := s.renderer.Render(c.Request.Context(), normalized, req.Size, margin)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"normalized_url": normalized,
		"png_data_url":   render.PNGDataURL,
		"svg":            render.SVG,
	})
}
