// Package dashboard aggregates the analytics shown on the admin
// console's landing page.
package dashboard

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured indicates the dashboard service dependency has not been provided.
var ErrNotConfigured = errors.New("dashboard service not configured")

// Service provides the dashboard overview.
type Service interface {
	// Overview returns KPI cards and the recent activity feed.
	Overview(ctx context.Context, token string) (Overview, error)
}

// Overview is the full dashboard payload.
type Overview struct {
	KPIs     []KPI          `json:"kpis"`
	Activity []ActivityItem `json:"activity"`
}

// KPI is one metric card.
type KPI struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	DeltaPct float64 `json:"deltaPct"`
	// Trend is "up", "down", or "flat" relative to the prior period.
	Trend string `json:"trend"`
}

// ActivityItem is one recent-updates entry.
type ActivityItem struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurredAt"`
}
