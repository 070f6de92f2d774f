package jobs

import (
	"fmt"
	"time"

	jobRepo "fixwork/database/repository/job"
	"fixwork/models"
	"fixwork/utils"

	"github.com/google/uuid"
)

// DefaultJobService is the production implementation.
type DefaultJobService struct {
	Repo jobRepo.JobRepository
	// Now is the clock used for completion timestamps. Defaults to
	// time.Now when nil.
	Now func() time.Time
}

func (s *DefaultJobService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateJob books a job. Referential integrity of ServiceID is the caller's
// responsibility; only structural constraints are enforced here.
func (s *DefaultJobService) CreateJob(input CreateJobInput) (string, error) {
	if input.ExpertID == "" || input.UserID == "" || input.ServiceID == "" {
		return "", utils.NewValidationFailure("expertId, userId and serviceId are required")
	}
	if input.Pin == 0 {
		return "", utils.NewValidationFailure("pin is required")
	}

	job := &models.Job{
		ID:             uuid.New().String(),
		ServiceID:      input.ServiceID,
		ExpertID:       input.ExpertID,
		UserID:         input.UserID,
		UserLocation:   input.UserLocation,
		ExpertLocation: input.ExpertLocation,
		Notes:          input.Notes,
		Distance:       input.Distance,
		TotalAmount:    input.TotalAmount,
		RatePerHour:    input.RatePerHour,
		Status:         models.JobPending,
		Pin:            input.Pin,
		Payment:        models.PaymentPending,
	}
	if err := s.Repo.Create(job); err != nil {
		return "", fmt.Errorf("failed to create job: %w", err)
	}
	return job.ID, nil
}

// GetJob retrieves a job by ID.
func (s *DefaultJobService) GetJob(id string) (*models.Job, error) {
	job, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}
	if job == nil {
		return nil, utils.NewNotFound("job with id %s not found", id)
	}
	return job, nil
}

// StartJob transitions a pending job to started. The repository applies the
// transition atomically against the current status, so a lost race shows up
// here as a non-match rather than a silent overwrite.
func (s *DefaultJobService) StartJob(id string) error {
	started, err := s.Repo.MarkStarted(id)
	if err != nil {
		return fmt.Errorf("failed to start job: %w", err)
	}
	if started {
		return nil
	}

	job, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch job: %w", err)
	}
	if job == nil {
		return utils.NewNotFound("job with id %s not found", id)
	}
	return utils.NewInvalidTransition("job with id %s is %s, only pending jobs can be started", id, job.Status)
}

// RecordPayment completes a job with a successful payment, recording the
// final amount, the payment type and the completion timestamp.
func (s *DefaultJobService) RecordPayment(id string, amount float64, paymentType string) error {
	completed, err := s.Repo.MarkCompleted(id, amount, paymentType, s.now())
	if err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	if completed {
		return nil
	}

	job, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch job: %w", err)
	}
	if job == nil {
		return utils.NewNotFound("job with id %s not found", id)
	}
	return utils.NewInvalidTransition("job with id %s is already completed", id)
}

// PreviousJobsForExpert lists an expert's jobs, newest first.
func (s *DefaultJobService) PreviousJobsForExpert(expertID string) ([]models.Job, error) {
	jobs, err := s.Repo.GetByExpertID(expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs for expert %s: %w", expertID, err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// PreviousJobsForUser lists a user's jobs, newest first.
func (s *DefaultJobService) PreviousJobsForUser(userID string) ([]models.Job, error) {
	jobs, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs for user %s: %w", userID, err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// AllJobs lists every job, newest first.
func (s *DefaultJobService) AllJobs() ([]models.Job, error) {
	jobs, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}
