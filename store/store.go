package store

import (
	"context"

	"goldencrust/api/models"
)

// MaxRecentLimit caps how many records a recent-views query may return. The
// dashboard only ever asks for 50; anything above the cap is clamped.
const MaxRecentLimit = 500

// DefaultRecentLimit is used when the caller sends no limit or an unusable one.
const DefaultRecentLimit = 50

// AnalyticsStore is the storage contract for page-view analytics. Exactly one
// implementation is selected at startup: MemoryStore by default, PostgresStore
// when DATABASE_URL is set.
type AnalyticsStore interface {
	// TrackPageView appends a new event, assigning its id and timestamp, and
	// registers the session id. Returns the fully materialized record.
	TrackPageView(ctx context.Context, req models.TrackPageViewRequest) (*models.PageView, error)

	// DailyStats groups all events by UTC calendar date, most recent date
	// first. Days with no events do not appear.
	DailyStats(ctx context.Context) ([]models.DailyStats, error)

	// TotalStats returns distinct sessions ever seen and total stored events.
	TotalStats(ctx context.Context) (*models.TotalStats, error)

	// RecentPageViews returns at most limit events, newest first.
	RecentPageViews(ctx context.Context, limit int) ([]models.PageView, error)
}

// clampLimit normalizes a caller-supplied limit to something safe to serve.
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		return MaxRecentLimit
	}
	return limit
}
