package server

import (
	"bytes"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	eventdomain "github.com/mannyyy07/quickqr/internal/event/domain"
	"go.uber.org/zap"
)

const htmlContentType = "text/html; charset=utf-8"

// Dashboard renders the analytics report. With a secret configured, a request
// without a matching key never reaches the underlying data.
func (s *Server) Dashboard(c *gin.Context) {
	if secret := s.cfg.DashboardSecret; secret != "" {
		key := c.Query("key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			s.renderNotice(c, http.StatusForbidden, "Access denied", "A valid key query parameter is required to view this dashboard.")
			return
		}
	}

	if s.db == nil {
		s.renderNotice(c, http.StatusOK, "Analytics not configured", "No analytics store is configured, so there is nothing to report. The QR generator itself is unaffected.")
		return
	}

	stats, err := s.eventSvc.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("load dashboard stats", zap.Error(err))
		s.renderNotice(c, http.StatusInternalServerError, "Report unavailable", "Failed to load analytics data.")
		return
	}

	var buf bytes.Buffer
	if err := s.dashboardTpl.ExecuteTemplate(&buf, "dashboard", dashboardView{
		Stats:      stats,
		WindowDays: eventdomain.TrendWindowDays,
		PageSize:   eventdomain.RecentPageSize,
	}); err != nil {
		s.log.Error("render dashboard", zap.Error(err))
		s.renderNotice(c, http.StatusInternalServerError, "Report unavailable", "Failed to render analytics data.")
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

func (s *Server) renderNotice(c *gin.Context, status int, title, message string) {
	var buf bytes.Buffer
	if err := s.dashboardTpl.ExecuteTemplate(&buf, "notice", noticeView{Title: title, Message: message}); err != nil {
		c.String(status, "%s", message)
		return
	}
	c.Data(status, htmlContentType, buf.Bytes())
}
