package jobs

import "fixwork/models"

// CreateJobInput carries the fields of a new booking.
type CreateJobInput struct {
	ExpertID       string
	UserID         string
	ServiceID      string
	UserLocation   models.UserGeo
	ExpertLocation models.ExpertGeo
	Notes          string
	Distance       float64
	TotalAmount    float64
	RatePerHour    float64
	Pin            int
}

// JobService defines business logic for the job lifecycle.
type JobService interface {
	// CreateJob books a job with status and payment both pending and
	// returns the new job's ID.
	CreateJob(input CreateJobInput) (string, error)
	// GetJob retrieves a job by ID.
	GetJob(id string) (*models.Job, error)
	// StartJob transitions a pending job to started. Starting a job that is
	// already started or completed is an invalidTransition error.
	StartJob(id string) error
	// RecordPayment marks a job completed with a successful payment,
	// overwriting the quoted amount with the final one. Recording payment
	// on an already completed job is an invalidTransition error.
	RecordPayment(id string, amount float64, paymentType string) error
	// PreviousJobsForExpert lists an expert's jobs, newest first.
	PreviousJobsForExpert(expertID string) ([]models.Job, error)
	// PreviousJobsForUser lists a user's jobs, newest first.
	PreviousJobsForUser(userID string) ([]models.Job, error)
	// AllJobs lists every job, newest first.
	AllJobs() ([]models.Job, error)
}
