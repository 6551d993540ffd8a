package models

import "time"

// PageView is a single stored page-view event. ID and Timestamp are assigned
// server-side at ingestion; UserAgent and Referrer stay null when the tracker
// did not send them.
type PageView struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Path      string    `json:"path"`
	UserAgent *string   `json:"userAgent"`
	Referrer  *string   `json:"referrer"`
	Timestamp time.Time `json:"timestamp"`
}

// TrackPageViewRequest is the tracker's POST body. SessionID and Path are
// mandatory; everything else passes through as-is.
type TrackPageViewRequest struct {
	SessionID string  `json:"sessionId" binding:"required"`
	Path      string  `json:"path" binding:"required"`
	UserAgent *string `json:"userAgent"`
	Referrer  *string `json:"referrer"`
}

// DailyStats is one per-day aggregate bucket, recomputed on every query.
// Date is the UTC calendar date in YYYY-MM-DD form.
type DailyStats struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	UniqueVisitors int    `json:"uniqueVisitors"`
	PageViews      int    `json:"pageViews"`
}

type TotalStats struct {
	TotalVisitors  int `json:"totalVisitors"`
	TotalPageViews int `json:"totalPageViews"`
}
