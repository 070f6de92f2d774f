package reporting

import "fixwork/models"

// ReportingService defines the on-demand reporting aggregates. Nothing is
// cached or materialized; every call recomputes against the store.
type ReportingService interface {
	// ExpertDashboard computes an expert's all-time totals, the current
	// month's per-day earnings breakdown and month-over-month growth rates.
	ExpertDashboard(expertID string) (*models.ExpertDashboard, error)
	// PlatformServiceData computes platform-wide totals, growth rates and
	// the top booked services ranking.
	PlatformServiceData() (*models.ServiceData, error)
}
