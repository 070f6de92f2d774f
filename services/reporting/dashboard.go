package reporting

import (
	"fmt"
	"time"

	jobRepo "fixwork/database/repository/job"
	serviceRepo "fixwork/database/repository/service"
	"fixwork/models"
)

// DefaultReportingService is the production implementation.
type DefaultReportingService struct {
	Jobs     jobRepo.JobRepository
	Services serviceRepo.ServiceRepository
	// Now is the clock the calendar-month windows are computed from.
	// Defaults to time.Now when nil.
	Now func() time.Time
}

func (s *DefaultReportingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ExpertDashboard runs the dashboard aggregation and derives the growth
// percentages from the current and previous month summaries.
func (s *DefaultReportingService) ExpertDashboard(expertID string) (*models.ExpertDashboard, error) {
	previousStart, currentStart, nextStart := MonthWindows(s.now())

	data, err := s.Jobs.ExpertDashboardData(expertID, currentStart, nextStart, previousStart)
	if err != nil {
		return nil, fmt.Errorf("failed to compute expert dashboard: %w", err)
	}
	return AssembleDashboard(data), nil
}

// AssembleDashboard turns the raw aggregation output into the dashboard
// response, applying the zero-guarded growth formula per metric.
func AssembleDashboard(data *jobRepo.DashboardData) *models.ExpertDashboard {
	cur, prev := data.CurrentMonth, data.PreviousMonth

	daily := data.DailyEarnings
	if daily == nil {
		daily = []models.DailyEarning{}
	}

	return &models.ExpertDashboard{
		TotalEarnings:      data.AllTime.TotalEarnings,
		TotalJobs:          data.AllTime.TotalJobs,
		TotalCompletedJobs: data.AllTime.TotalCompletedJobs,
		TotalDistance:      data.AllTime.TotalDistance,

		TotalEarningsGrowth:      GrowthRate(cur.TotalEarnings, prev.TotalEarnings),
		TotalJobsGrowth:          GrowthRate(float64(cur.TotalJobs), float64(prev.TotalJobs)),
		TotalCompletedJobsGrowth: GrowthRate(float64(cur.TotalCompletedJobs), float64(prev.TotalCompletedJobs)),
		TotalDistanceGrowth:      GrowthRate(cur.TotalDistance, prev.TotalDistance),

		DailyEarningsCurrentMonth: daily,
	}
}

// ExpertEarnings is the payout for a completed job amount after the platform
// commission.
func ExpertEarnings(amount float64) float64 {
	return amount * models.ExpertEarningsFactor
}
