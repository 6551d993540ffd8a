package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goldencrust/api/metrics"
	"goldencrust/api/models"
	"goldencrust/api/store"
)

type AnalyticsHandlers struct {
	Store store.AnalyticsStore
}

func NewAnalyticsHandlers(s store.AnalyticsStore) *AnalyticsHandlers {
	return &AnalyticsHandlers{
		Store: s,
	}
}

// TrackPageView records one page-view event. The storefront tracker calls this
// once per page load with its session id; id and timestamp are assigned here,
// never trusted from the client.
func (h *AnalyticsHandlers) TrackPageView(c *gin.Context) {
	var req models.TrackPageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error binding incoming page view JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pv, err := h.Store.TrackPageView(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error recording page view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record page view"})
		return
	}

	metrics.RecordPageViewTracked()
	c.JSON(http.StatusOK, pv)
}

// GetDailyStats returns per-day aggregates, most recent day first. Days with
// no traffic are absent rather than zero-filled.
func (h *AnalyticsHandlers) GetDailyStats(c *gin.Context) {
	stats, err := h.Store.DailyStats(c.Request.Context())
	if err != nil {
		log.Printf("Error getting daily stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve daily statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetTotalStats returns all-time unique visitors and page views.
func (h *AnalyticsHandlers) GetTotalStats(c *gin.Context) {
	totals, err := h.Store.TotalStats(c.Request.Context())
	if err != nil {
		log.Printf("Error getting total stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve total statistics"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

// GetRecentPageViews returns the newest events first. A missing or unparseable
// limit falls back to the default; the store clamps oversized values.
func (h *AnalyticsHandlers) GetRecentPageViews(c *gin.Context) {
	limit := store.DefaultRecentLimit
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			log.Printf("Invalid 'limit' parameter %q, using default %d", limitParam, store.DefaultRecentLimit)
		} else {
			limit = parsed
		}
	}

	recent, err := h.Store.RecentPageViews(c.Request.Context(), limit)
	if err != nil {
		log.Printf("Error getting recent page views: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recent page views"})
		return
	}

	c.JSON(http.StatusOK, recent)
}
