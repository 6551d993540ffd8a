package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldencrust/api/models"
)

func strPtr(s string) *string { return &s }

func track(t *testing.T, s *MemoryStore, sessionID, path string) *models.PageView {
	t.Helper()
	pv, err := s.TrackPageView(context.Background(), models.TrackPageViewRequest{
		SessionID: sessionID,
		Path:      path,
	})
	require.NoError(t, err)
	return pv
}

func TestTrackPageView_MaterializesRecord(t *testing.T) {
	s := NewMemoryStore()

	pv, err := s.TrackPageView(context.Background(), models.TrackPageViewRequest{
		SessionID: "s1",
		Path:      "/menu",
		UserAgent: strPtr("Mozilla/5.0"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, pv.ID)
	assert.Equal(t, "s1", pv.SessionID)
	assert.Equal(t, "/menu", pv.Path)
	require.NotNil(t, pv.UserAgent)
	assert.Equal(t, "Mozilla/5.0", *pv.UserAgent)
	assert.Nil(t, pv.Referrer)
	assert.False(t, pv.Timestamp.IsZero())
	assert.Equal(t, time.UTC, pv.Timestamp.Location())
}

func TestTrackPageView_UniqueIDs(t *testing.T) {
	s := NewMemoryStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		pv := track(t, s, "s1", "/")
		assert.False(t, seen[pv.ID], "duplicate event id %s", pv.ID)
		seen[pv.ID] = true
	}
}

func TestTotalStats_DistinctSessions(t *testing.T) {
	s := NewMemoryStore()

	const n = 10
	for i := 0; i < n; i++ {
		track(t, s, fmt.Sprintf("session-%d", i), "/")
	}

	totals, err := s.TotalStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, n, totals.TotalVisitors)
	assert.Equal(t, n, totals.TotalPageViews)
}

func TestTotalStats_SessionRegistryIdempotent(t *testing.T) {
	s := NewMemoryStore()

	track(t, s, "s1", "/")
	track(t, s, "s1", "/menu")
	track(t, s, "s1", "/shop")

	totals, err := s.TotalStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, totals.TotalVisitors)
	assert.Equal(t, 3, totals.TotalPageViews)
}

func TestDailyStats_SingleDayScenario(t *testing.T) {
	s := NewMemoryStore()
	s.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}

	track(t, s, "s1", "/")
	track(t, s, "s1", "/menu")
	track(t, s, "s2", "/")

	stats, err := s.DailyStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)

	assert.NotEmpty(t, stats[0].ID)
	assert.Equal(t, "2026-03-14", stats[0].Date)
	assert.Equal(t, 3, stats[0].PageViews)
	assert.Equal(t, 2, stats[0].UniqueVisitors)

	totals, err := s.TotalStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, totals.TotalVisitors)
	assert.Equal(t, 3, totals.TotalPageViews)
}

func TestDailyStats_UniquenessScopedPerDay(t *testing.T) {
	s := NewMemoryStore()

	day := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day }
	track(t, s, "s1", "/")

	day = day.AddDate(0, 0, 1)
	track(t, s, "s1", "/menu")
	track(t, s, "s1", "/shop")

	stats, err := s.DailyStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Descending by date, and the shared session counts once in each bucket.
	assert.Equal(t, "2026-03-15", stats[0].Date)
	assert.Equal(t, 1, stats[0].UniqueVisitors)
	assert.Equal(t, 2, stats[0].PageViews)
	assert.Equal(t, "2026-03-14", stats[1].Date)
	assert.Equal(t, 1, stats[1].UniqueVisitors)
	assert.Equal(t, 1, stats[1].PageViews)
}

func TestDailyStats_SumOfViewsMatchesTotals(t *testing.T) {
	s := NewMemoryStore()

	day := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day }
	for i := 0; i < 4; i++ {
		track(t, s, fmt.Sprintf("s%d", i%2), "/")
		if i%2 == 1 {
			day = day.AddDate(0, 0, 1)
		}
	}

	stats, err := s.DailyStats(context.Background())
	require.NoError(t, err)
	totals, err := s.TotalStats(context.Background())
	require.NoError(t, err)

	sum := 0
	for _, ds := range stats {
		sum += ds.PageViews
	}
	assert.Equal(t, totals.TotalPageViews, sum)
}

func TestDailyStats_NoZeroFilledGaps(t *testing.T) {
	s := NewMemoryStore()

	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day }
	track(t, s, "s1", "/")

	// Skip a whole week, the missing days must not appear.
	day = day.AddDate(0, 0, 7)
	track(t, s, "s1", "/")

	stats, err := s.DailyStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "2026-03-08", stats[0].Date)
	assert.Equal(t, "2026-03-01", stats[1].Date)
}

func TestDailyStats_IdempotentWithoutWrites(t *testing.T) {
	s := NewMemoryStore()

	track(t, s, "s1", "/")
	track(t, s, "s2", "/menu")

	first, err := s.DailyStats(context.Background())
	require.NoError(t, err)
	second, err := s.DailyStats(context.Background())
	require.NoError(t, err)

	// Bucket ids are regenerated per query; the aggregates must not move.
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Date, second[i].Date)
		assert.Equal(t, first[i].UniqueVisitors, second[i].UniqueVisitors)
		assert.Equal(t, first[i].PageViews, second[i].PageViews)
	}
}

func TestDailyStats_EmptyStore(t *testing.T) {
	s := NewMemoryStore()

	stats, err := s.DailyStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)

	totals, err := s.TotalStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, totals.TotalVisitors)
	assert.Equal(t, 0, totals.TotalPageViews)
}

func TestRecentPageViews_NewestFirst(t *testing.T) {
	s := NewMemoryStore()

	track(t, s, "s1", "/a")
	track(t, s, "s1", "/b")
	track(t, s, "s1", "/c")

	recent, err := s.RecentPageViews(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "/c", recent[0].Path)
	assert.Equal(t, "/b", recent[1].Path)
}

func TestRecentPageViews_FewerThanLimit(t *testing.T) {
	s := NewMemoryStore()

	track(t, s, "s1", "/a")
	track(t, s, "s1", "/b")

	recent, err := s.RecentPageViews(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestRecentPageViews_DefaultLimit(t *testing.T) {
	s := NewMemoryStore()

	for i := 0; i < DefaultRecentLimit+10; i++ {
		track(t, s, "s1", fmt.Sprintf("/page-%d", i))
	}

	recent, err := s.RecentPageViews(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recent, DefaultRecentLimit)
	assert.Equal(t, fmt.Sprintf("/page-%d", DefaultRecentLimit+9), recent[0].Path)
}

func TestRecentPageViews_ClampsOversizedLimit(t *testing.T) {
	s := NewMemoryStore()

	for i := 0; i < MaxRecentLimit+5; i++ {
		track(t, s, "s1", "/")
	}

	recent, err := s.RecentPageViews(context.Background(), 1000000)
	require.NoError(t, err)
	assert.Len(t, recent, MaxRecentLimit)
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	s := NewMemoryStore()

	const writers = 8
	const perWriter = 50

	done := make(chan struct{})
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < perWriter; i++ {
				_, err := s.TrackPageView(context.Background(), models.TrackPageViewRequest{
					SessionID: fmt.Sprintf("w%d", w),
					Path:      "/",
				})
				assert.NoError(t, err)
			}
		}(w)
	}
	for w := 0; w < writers; w++ {
		<-done
	}

	totals, err := s.TotalStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, writers, totals.TotalVisitors)
	assert.Equal(t, writers*perWriter, totals.TotalPageViews)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultRecentLimit, clampLimit(0))
	assert.Equal(t, DefaultRecentLimit, clampLimit(-3))
	assert.Equal(t, 7, clampLimit(7))
	assert.Equal(t, MaxRecentLimit, clampLimit(MaxRecentLimit))
	assert.Equal(t, MaxRecentLimit, clampLimit(MaxRecentLimit+1))
}
