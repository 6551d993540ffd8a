package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"goldencrust/api/models"
)

// MemoryStore keeps the page-view log and session registry in process memory.
// Data does not survive a restart, which is fine for this dashboard; the
// Postgres store covers anyone who needs durability.
type MemoryStore struct {
	mu       sync.RWMutex
	events   []models.PageView
	sessions map[string]struct{}

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]struct{}),
		now:      time.Now,
	}
}

func (s *MemoryStore) TrackPageView(_ context.Context, req models.TrackPageViewRequest) (*models.PageView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pv := models.PageView{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		Path:      req.Path,
		UserAgent: req.UserAgent,
		Referrer:  req.Referrer,
		Timestamp: s.now().UTC(),
	}
	s.events = append(s.events, pv)
	s.sessions[req.SessionID] = struct{}{}

	return &pv, nil
}

func (s *MemoryStore) DailyStats(_ context.Context) ([]models.DailyStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type bucket struct {
		sessions  map[string]struct{}
		pageViews int
	}
	buckets := make(map[string]*bucket)

	for _, pv := range s.events {
		date := pv.Timestamp.UTC().Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{sessions: make(map[string]struct{})}
			buckets[date] = b
		}
		b.sessions[pv.SessionID] = struct{}{}
		b.pageViews++
	}

	stats := make([]models.DailyStats, 0, len(buckets))
	for date, b := range buckets {
		stats = append(stats, models.DailyStats{
			ID:             uuid.New().String(),
			Date:           date,
			UniqueVisitors: len(b.sessions),
			PageViews:      b.pageViews,
		})
	}

	// Most recent day first. YYYY-MM-DD sorts lexicographically.
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date > stats[j].Date
	})

	return stats, nil
}

func (s *MemoryStore) TotalStats(_ context.Context) (*models.TotalStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &models.TotalStats{
		TotalVisitors:  len(s.sessions),
		TotalPageViews: len(s.events),
	}, nil
}

func (s *MemoryStore) RecentPageViews(_ context.Context, limit int) ([]models.PageView, error) {
	limit = clampLimit(limit)

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.events)
	if limit > n {
		limit = n
	}

	recent := make([]models.PageView, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		recent = append(recent, s.events[i])
	}

	return recent, nil
}
