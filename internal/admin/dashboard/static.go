package dashboard

import (
	"context"
	"time"
)

// StaticService provides canned responses for development, previews,
// and tests when no backend is configured.
type StaticService struct {
	Data *Overview
}

// NewStaticService builds a StaticService populated with representative
// marketplace figures.
func NewStaticService() *StaticService {
	now := time.Now()
	return &StaticService{
		Data: &Overview{
			KPIs: []KPI{
				{ID: "revenue", Label: "Revenue (30d)", Value: 482350, Unit: "NPR", DeltaPct: 12.4, Trend: "up"},
				{ID: "orders", Label: "Orders (30d)", Value: 1287, DeltaPct: 4.1, Trend: "up"},
				{ID: "customers", Label: "New customers", Value: 342, DeltaPct: -2.3, Trend: "down"},
				{ID: "pending_vendors", Label: "Pending vendors", Value: 7, Trend: "flat"},
			},
			Activity: []ActivityItem{
				{
					ID:         "act-1",
					Kind:       "order",
					Title:      "Order #4821 placed",
					Detail:     "3 items, Rs 2,450 — payment via eSewa",
					OccurredAt: now.Add(-12 * time.Minute),
				},
				{
					ID:         "act-2",
					Kind:       "vendor",
					Title:      "Vendor application: Himalayan Crafts",
					Detail:     "Awaiting approval",
					OccurredAt: now.Add(-47 * time.Minute),
				},
				{
					ID:         "act-3",
					Kind:       "message",
					Title:      "New contact message",
					Detail:     "Question about delivery to Pokhara",
					OccurredAt: now.Add(-2 * time.Hour),
				},
			},
		},
	}
}

// Overview returns the configured static payload.
func (s *StaticService) Overview(ctx context.Context, token string) (Overview, error) {
	if s.Data == nil {
		return Overview{}, nil
	}
	return *s.Data, nil
}
