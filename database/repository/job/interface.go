package jobRepo

import (
	"time"

	"fixwork/models"
)

// DashboardData is the raw aggregation output backing the expert dashboard:
// one summary per time window plus the current month's per-day earnings.
type DashboardData struct {
	AllTime       models.PeriodSummary
	CurrentMonth  models.PeriodSummary
	PreviousMonth models.PeriodSummary
	DailyEarnings []models.DailyEarning
}

// JobRepository defines methods for job data access.
type JobRepository interface {
	// Create inserts a new job record.
	Create(job *models.Job) error
	// GetByID retrieves a job by its unique ID. Returns (nil, nil) when no
	// job matches.
	GetByID(id string) (*models.Job, error)
	// GetByExpertID retrieves an expert's jobs, newest first.
	GetByExpertID(expertID string) ([]models.Job, error)
	// GetByUserID retrieves a user's jobs, newest first.
	GetByUserID(userID string) ([]models.Job, error)
	// GetAll retrieves all jobs, newest first.
	GetAll() ([]models.Job, error)
	// MarkStarted transitions a pending job to started. Reports whether a
	// pending job with the given ID matched.
	MarkStarted(id string) (bool, error)
	// MarkCompleted records a successful payment: sets status completed,
	// payment success, the final amount, the payment type and completedAt.
	// Only matches jobs not already completed.
	MarkCompleted(id string, amount float64, paymentType string, completedAt time.Time) (bool, error)
	// ExpertDashboardData runs the dashboard aggregation for one expert over
	// the given calendar-month windows.
	ExpertDashboardData(expertID string, currentStart, nextStart, previousStart time.Time) (*DashboardData, error)
	// CountCompleted returns the total number of completed jobs.
	CountCompleted() (int64, error)
	// CountCompletedBetween counts jobs completed in [from, to), keyed on
	// the completedAt timestamp.
	CountCompletedBetween(from, to time.Time) (int64, error)
	// TopBookedServices ranks services by completed-booking count,
	// descending, up to limit entries, with the current service name joined
	// in.
	TopBookedServices(limit int64) ([]models.BookedService, error)
}
