package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"goldencrust/api/models"
)

// PostgresStore is the durable AnalyticsStore, selected when DATABASE_URL is
// set. Ids and timestamps are still assigned in Go so both stores produce
// identical records; seq preserves insertion order for the recent-views query.
type PostgresStore struct {
	db *sql.DB
}

const pageViewsSchema = `
	CREATE TABLE IF NOT EXISTS page_views (
		seq        BIGSERIAL PRIMARY KEY,
		id         VARCHAR(36) NOT NULL UNIQUE,
		session_id TEXT NOT NULL,
		path       TEXT NOT NULL,
		user_agent TEXT,
		referrer   TEXT,
		timestamp  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_page_views_timestamp ON page_views (timestamp);
	CREATE INDEX IF NOT EXISTS idx_page_views_session_id ON page_views (session_id);
`

// NewPostgresStore ensures the page_views table exists and returns the store.
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	if _, err := db.ExecContext(ctx, pageViewsSchema); err != nil {
		return nil, fmt.Errorf("failed to ensure page_views schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) TrackPageView(ctx context.Context, req models.TrackPageViewRequest) (*models.PageView, error) {
	pv := models.PageView{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		Path:      req.Path,
		UserAgent: req.UserAgent,
		Referrer:  req.Referrer,
		Timestamp: time.Now().UTC(),
	}

	query := `
		INSERT INTO page_views (id, session_id, path, user_agent, referrer, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := s.db.ExecContext(ctx, query,
		pv.ID,
		pv.SessionID,
		pv.Path,
		nullable(pv.UserAgent),
		nullable(pv.Referrer),
		pv.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert page view: %w", err)
	}

	return &pv, nil
}

func (s *PostgresStore) DailyStats(ctx context.Context) ([]models.DailyStats, error) {
	query := `
		SELECT to_char(timestamp AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS date,
		       COUNT(DISTINCT session_id) AS unique_visitors,
		       COUNT(*) AS page_views
		FROM page_views
		GROUP BY date
		ORDER BY date DESC;
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.DailyStats, 0)
	for rows.Next() {
		var ds models.DailyStats
		if err := rows.Scan(&ds.Date, &ds.UniqueVisitors, &ds.PageViews); err != nil {
			return nil, fmt.Errorf("failed to scan daily stats row: %w", err)
		}
		ds.ID = uuid.New().String()
		stats = append(stats, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during daily stats query: %w", err)
	}

	return stats, nil
}

func (s *PostgresStore) TotalStats(ctx context.Context) (*models.TotalStats, error) {
	query := `SELECT COUNT(DISTINCT session_id), COUNT(*) FROM page_views;`

	var totals models.TotalStats
	err := s.db.QueryRowContext(ctx, query).Scan(&totals.TotalVisitors, &totals.TotalPageViews)
	if err != nil {
		return nil, fmt.Errorf("failed to query total stats: %w", err)
	}

	return &totals, nil
}

func (s *PostgresStore) RecentPageViews(ctx context.Context, limit int) ([]models.PageView, error) {
	limit = clampLimit(limit)

	query := `
		SELECT id, session_id, path, user_agent, referrer, timestamp
		FROM page_views
		ORDER BY seq DESC
		LIMIT $1;
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent page views: %w", err)
	}
	defer rows.Close()

	recent := make([]models.PageView, 0, limit)
	for rows.Next() {
		var (
			pv        models.PageView
			userAgent sql.NullString
			referrer  sql.NullString
		)
		if err := rows.Scan(&pv.ID, &pv.SessionID, &pv.Path, &userAgent, &referrer, &pv.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan page view row: %w", err)
		}
		if userAgent.Valid {
			pv.UserAgent = &userAgent.String
		}
		if referrer.Valid {
			pv.Referrer = &referrer.String
		}
		pv.Timestamp = pv.Timestamp.UTC()
		recent = append(recent, pv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during recent page views query: %w", err)
	}

	return recent, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
