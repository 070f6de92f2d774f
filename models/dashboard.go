package models

// PeriodSummary aggregates an expert's jobs over one time window.
// Earnings already have the platform commission deducted.
type PeriodSummary struct {
	TotalEarnings      float64 `bson:"totalEarnings" json:"totalEarnings"`
	TotalJobs          int64   `bson:"totalJobs" json:"totalJobs"`
	TotalCompletedJobs int64   `bson:"totalCompletedJobs" json:"totalCompletedJobs"`
	TotalDistance      float64 `bson:"totalDistance" json:"totalDistance"`
}

// DailyEarning is one day's completed-job earnings within the current month.
// Date is the day-of-month rendered as a string.
type DailyEarning struct {
	Date          string  `bson:"date" json:"date"`
	DailyEarnings float64 `bson:"dailyEarnings" json:"dailyEarnings"`
}

// ExpertDashboard is the response for the expert dashboard query: all-time
// totals, a per-day earnings breakdown for the current month, and
// month-over-month growth percentages.
type ExpertDashboard struct {
	TotalEarnings      float64 `json:"totalEarnings"`
	TotalJobs          int64   `json:"totalJobs"`
	TotalCompletedJobs int64   `json:"totalCompletedJobs"`
	TotalDistance      float64 `json:"totalDistance"`

	TotalEarningsGrowth      float64 `json:"totalEarningsGrowth"`
	TotalJobsGrowth          float64 `json:"totalJobsGrowth"`
	TotalCompletedJobsGrowth float64 `json:"totalCompletedJobsGrowth"`
	TotalDistanceGrowth      float64 `json:"totalDistanceGrowth"`

	DailyEarningsCurrentMonth []DailyEarning `json:"dailyEarningsCurrentMonth"`
}

// BookedService is one entry of the top-booked-services ranking.
type BookedService struct {
	ServiceID    string `bson:"serviceId" json:"serviceId"`
	Name         string `bson:"name" json:"name"`
	BookingCount int64  `bson:"bookingCount" json:"bookingCount"`
}

// ServiceData is the platform-wide reporting aggregate.
type ServiceData struct {
	TotalServices           int64           `json:"totalServices"`
	ServiceGrowthRate       float64         `json:"serviceGrowthRate"`
	TotalJobsCompleted      int64           `json:"totalJobsCompleted"`
	JobCompletionGrowthRate float64         `json:"jobCompletionGrowthRate"`
	TopBookedServices       []BookedService `json:"topBookedServices"`
}
