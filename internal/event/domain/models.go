// Package domain contains persistence models and contracts for usage events.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Event kinds form a closed enumeration; the ingest path and the table's
// CHECK constraint both reject anything else.
const (
	KindPageVisit    = "page_visit"
	KindQRGenerated  = "qr_generated"
	KindQRDownloaded = "qr_downloaded"
)

// Kinds lists every allowed event kind in display order.
var Kinds = []string{KindPageVisit, KindQRGenerated, KindQRDownloaded}

// ValidKind reports whether kind is one of the allowed values.
func ValidKind(kind string) bool {
	switch kind {
	case KindPageVisit, KindQRGenerated, KindQRDownloaded:
		return true
	}
	return false
}

// UsageEvent is one anonymous usage record. Rows are immutable after insert;
// there is no update or delete path.
type UsageEvent struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Kind      string `gorm:"type:text;not null;index" json:"kind"`
	SessionID string `gorm:"type:text;not null" json:"session_id"`

	// Payload is an open map whose shape varies by kind.
	Payload datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"payload"`

	// IPHash is the only form in which the caller address is persisted.
	IPHash string `gorm:"type:text;not null" json:"-"`

	UserAgent *string `gorm:"type:text" json:"user_agent,omitempty"`
	Referrer  *string `gorm:"type:text" json:"referrer,omitempty"`
}

// TableName sets the database table name.
func (UsageEvent) TableName() string { return "usage_events" }

// DestinationURL extracts the payload's destination URL, if present.
func (e *UsageEvent) DestinationURL() string {
	if e == nil || e.Payload == nil {
		return ""
	}
	if raw, ok := e.Payload["destinationUrl"]; ok {
		if value, ok := raw.(string); ok {
			return value
		}
	}
	return ""
}
