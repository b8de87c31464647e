package server

import (
	"fmt"
	"html/template"
	"time"

	eventdomain "github.com/mannyyy07/quickqr/internal/event/domain"
)

type dashboardView struct {
	Stats      *eventdomain.Stats
	WindowDays int
	PageSize   int
}

type noticeView struct {
	Title   string
	Message string
}

const dashboardHTMLTemplate = `{{define "dashboard"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>QuickQR Analytics</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #f9fafb;
    }
    .report { max-width: 920px; margin: 0 auto; }
    h1 { margin: 0 0 4px; }
    .subtitle { color: #6b7280; font-size: 13px; margin-bottom: 24px; }
    .cards { display: flex; gap: 16px; margin-bottom: 24px; }
    .card {
      flex: 1;
      background: #ffffff;
      border: 1px solid #e5e7eb;
      border-radius: 8px;
      padding: 16px;
    }
    .card .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    .card .value { font-size: 28px; font-weight: 600; }
    .section { background: #ffffff; border: 1px solid #e5e7eb; border-radius: 8px; padding: 16px; margin-bottom: 24px; }
    .section h2 { margin: 0 0 12px; font-size: 16px; }
    .trend { display: flex; align-items: flex-end; gap: 4px; height: 120px; }
    .trend .bar { flex: 1; background: #2563eb; border-radius: 2px 2px 0 0; min-height: 2px; }
    .trend-days { display: flex; gap: 4px; font-size: 10px; color: #6b7280; }
    .trend-days span { flex: 1; text-align: center; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; }
    th, td { padding: 8px 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
    th { text-transform: uppercase; font-size: 11px; letter-spacing: 0.04em; color: #6b7280; }
    .note { color: #6b7280; font-size: 12px; margin-top: 8px; }
  </style>
</head>
<body>
  <div class="report">
    <h1>QuickQR Analytics</h1>
    <div class="subtitle">Generated {{formatTime .Stats.GeneratedAt}} &middot; trailing {{.WindowDays}} days</div>

    <div class="cards">
      <div class="card"><div class="label">Page visits</div><div class="value">{{.Stats.Counts.PageVisits}}</div></div>
      <div class="card"><div class="label">Codes generated</div><div class="value">{{.Stats.Counts.QRGenerated}}</div></div>
      <div class="card"><div class="label">Codes downloaded</div><div class="value">{{.Stats.Counts.QRDownloaded}}</div></div>
      <div class="card"><div class="label">Sessions (recent page)</div><div class="value">{{.Stats.UniqueSessions}}</div></div>
    </div>

    <div class="section">
      <h2>Daily activity</h2>
      <div class="trend">
        {{range .Stats.Trend}}<div class="bar" style="height: {{barPct .Count $.Stats.TrendMax}}%" title="{{.Day}}: {{.Count}}"></div>{{end}}
      </div>
      <div class="trend-days">
        {{range .Stats.Trend}}<span>{{dayOfMonth .Day}}</span>{{end}}
      </div>
      <div class="note">Bucketed from the newest {{.PageSize}} events.</div>
    </div>

    <div class="section">
      <h2>Top destinations</h2>
      {{if .Stats.TopDomains}}
      <table>
        <thead><tr><th>Domain</th><th>Codes</th></tr></thead>
        <tbody>
          {{range .Stats.TopDomains}}<tr><td>{{.Domain}}</td><td>{{.Count}}</td></tr>{{end}}
        </tbody>
      </table>
      {{else}}<div class="note">No codes generated yet.</div>{{end}}
    </div>

    <div class="section">
      <h2>Recent activity</h2>
      {{if .Stats.Recent}}
      <table>
        <thead><tr><th>When</th><th>Event</th><th>Session</th><th>Destination</th></tr></thead>
        <tbody>
          {{range .Stats.Recent}}
          <tr>
            <td>{{formatTime .CreatedAt}}</td>
            <td>{{kindLabel .Kind}}</td>
            <td>{{shortSession .SessionID}}</td>
            <td>{{.DestinationURL}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
      {{else}}<div class="note">No events recorded yet.</div>{{end}}
    </div>
  </div>
</body>
</html>
{{end}}

{{define "notice"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    body {
      margin: 0;
      padding: 80px 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #f9fafb;
      text-align: center;
    }
    .box { max-width: 480px; margin: 0 auto; }
    p { color: #6b7280; }
  </style>
</head>
<body>
  <div class="box">
    <h1>{{.Title}}</h1>
    <p>{{.Message}}</p>
  </div>
</body>
</html>
{{end}}`

func newDashboardTemplate() *template.Template {
	funcs := template.FuncMap{
		"formatTime":   formatTime,
		"barPct":       barPct,
		"dayOfMonth":   dayOfMonth,
		"kindLabel":    kindLabel,
		"shortSession": shortSession,
	}
	return template.Must(template.New("report").Funcs(funcs).Parse(dashboardHTMLTemplate))
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format("2006-01-02 15:04")
}

// barPct scales a bucket against the series maximum, which is never below 1.
func barPct(count, max int) int {
	if max < 1 {
		max = 1
	}
	return count * 100 / max
}

func dayOfMonth(isoDay string) string {
	if len(isoDay) < 10 {
		return isoDay
	}
	return isoDay[8:10]
}

func kindLabel(kind string) string {
	switch kind {
	case eventdomain.KindPageVisit:
		return "Visit"
	case eventdomain.KindQRGenerated:
		return "Generated"
	case eventdomain.KindQRDownloaded:
		return "Downloaded"
	}
	return kind
}

func shortSession(sessionID string) string {
	if len(sessionID) <= 8 {
		return sessionID
	}
	return fmt.Sprintf("%s…", sessionID[:8])
}
