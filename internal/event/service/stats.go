package service

import (
	"context"
	"net/url"
	"sort"
	"time"

	eventdomain "github.com/mannyyy07/quickqr/internal/event/domain"
	"golang.org/x/sync/errgroup"
)

const recentActivityLimit = 15

// Stats computes the dashboard aggregation on demand. The per-kind counts are
// exact aggregates over the trailing window; the session, domain, trend, and
// recent panels derive from the bounded newest-first row page. Above the page
// size the two views can disagree, which mirrors the documented behavior.
func (s *Service) Stats(ctx context.Context) (*eventdomain.Stats, error) {
	if s.db == nil {
		return nil, eventdomain.ErrStoreNotConfigured
	}

	now := s.clock.Now()
	windowStart := startOfDay(now).AddDate(0, 0, -(eventdomain.TrendWindowDays - 1))

	var page []*eventdomain.UsageEvent
	counts := make([]int64, len(eventdomain.Kinds))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Order("created_at DESC").
			Limit(eventdomain.RecentPageSize).
			Find(&page).Error
	})
	for i, kind := range eventdomain.Kinds {
		g.Go(func() error {
			return s.db.WithContext(gctx).
				Model(&eventdomain.UsageEvent{}).
				Where("kind = ? AND created_at >= ?", kind, windowStart.UTC()).
				Count(&counts[i]).Error
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &eventdomain.Stats{
		GeneratedAt: now,
		Counts: eventdomain.KindCounts{
			PageVisits:   counts[0],
			QRGenerated:  counts[1],
			QRDownloaded: counts[2],
		},
	}
	stats.Counts.WindowedTotal = counts[0] + counts[1] + counts[2]

	stats.UniqueSessions = uniqueSessions(page)
	stats.TopDomains = topDomains(page, 5)
	stats.Trend, stats.TrendMax = dailyTrend(page, now)
	stats.Recent = recentActivity(page, recentActivityLimit)
	return stats, nil
}

func uniqueSessions(page []*eventdomain.UsageEvent) int {
	seen := make(map[string]struct{}, len(page))
	for _, ev := range page {
		if ev == nil {
			continue
		}
		seen[ev.SessionID] = struct{}{}
	}
	return len(seen)
}

// topDomains ranks destination hostnames of qr_generated rows by descending
// frequency. Ties keep first-encountered order in the page (stable sort).
func topDomains(page []*eventdomain.UsageEvent, limit int) []eventdomain.DomainCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, ev := range page {
		if ev == nil || ev.Kind != eventdomain.KindQRGenerated {
			continue
		}
		host := hostnameOf(ev.DestinationURL())
		if host == "" {
			continue
		}
		if _, ok := counts[host]; !ok {
			order = append(order, host)
		}
		counts[host]++
	}

	ranked := make([]eventdomain.DomainCount, 0, len(order))
	for _, host := range order {
		ranked = append(ranked, eventdomain.DomainCount{Domain: host, Count: counts[host]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func hostnameOf(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

// dailyTrend buckets the page's rows by calendar day across the trailing
// window, zero-filling days with no activity. The returned max is the chart
// scale and never drops below 1.
func dailyTrend(page []*eventdomain.UsageEvent, now time.Time) ([]eventdomain.TrendBucket, int) {
	loc := now.Location()
	start := startOfDay(now).AddDate(0, 0, -(eventdomain.TrendWindowDays - 1))

	byDay := make(map[string]int, eventdomain.TrendWindowDays)
	for _, ev := range page {
		if ev == nil {
			continue
		}
		local := ev.CreatedAt.In(loc)
		if local.Before(start) {
			continue
		}
		byDay[local.Format("2006-01-02")]++
	}

	trend := make([]eventdomain.TrendBucket, 0, eventdomain.TrendWindowDays)
	max := 1
	for i := 0; i < eventdomain.TrendWindowDays; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		count := byDay[day]
		if count > max {
			max = count
		}
		trend = append(trend, eventdomain.TrendBucket{Day: day, Count: count})
	}
	return trend, max
}

func recentActivity(page []*eventdomain.UsageEvent, limit int) []eventdomain.Activity {
	recent := make([]eventdomain.Activity, 0, limit)
	for _, ev := range page {
		if ev == nil {
			continue
		}
		if len(recent) == limit {
			break
		}
		recent = append(recent, eventdomain.Activity{
			Kind:           ev.Kind,
			SessionID:      ev.SessionID,
			DestinationURL: ev.DestinationURL(),
			CreatedAt:      ev.CreatedAt,
		})
	}
	return recent
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
