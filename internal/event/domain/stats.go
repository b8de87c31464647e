package domain

import "time"

// TrendWindowDays is the trailing window, inclusive of today, used for the
// exact per-kind counts and the daily trend series.
const TrendWindowDays = 14

// RecentPageSize bounds the newest-first row page that feeds the session,
// domain, and recent-activity panels.
const RecentPageSize = 200

// KindCounts holds exact per-kind totals over the trailing window. These are
// aggregate queries, not derived from the bounded row page, so they can
// exceed what the page-derived panels show.
type KindCounts struct {
	PageVisits    int64 `json:"page_visits"`
	QRGenerated   int64 `json:"qr_generated"`
	QRDownloaded  int64 `json:"qr_downloaded"`
	WindowedTotal int64 `json:"windowed_total"`
}

// DomainCount is one entry of the top-domain ranking.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// TrendBucket is one calendar day of the trend series.
type TrendBucket struct {
	Day   string `json:"day"` // ISO date, server time zone
	Count int    `json:"count"`
}

// Activity is one row of the recent-activity listing.
type Activity struct {
	Kind           string    `json:"kind"`
	SessionID      string    `json:"session_id"`
	DestinationURL string    `json:"destination_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Stats is the dashboard aggregation, computed fresh on every view request.
type Stats struct {
	GeneratedAt time.Time `json:"generated_at"`

	Counts         KindCounts    `json:"counts"`
	UniqueSessions int           `json:"unique_sessions"`
	TopDomains     []DomainCount `json:"top_domains"`
	Trend          []TrendBucket `json:"trend"`
	// TrendMax is the vertical scale for the trend chart, never below 1.
	TrendMax int        `json:"trend_max"`
	Recent   []Activity `json:"recent"`
}
