package jobs

import (
	"testing"
	"time"

	jobRepo "fixwork/database/repository/job"
	"fixwork/models"
	"fixwork/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeJobRepo is an in-memory JobRepository covering the lifecycle methods.
type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (f *fakeJobRepo) Create(j *models.Job) error {
	cp := *j
	f.jobs[j.ID] = &cp
	return nil
}

func (f *fakeJobRepo) GetByID(id string) (*models.Job, error) {
	if j, ok := f.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeJobRepo) GetByExpertID(expertID string) ([]models.Job, error) { return nil, nil }
func (f *fakeJobRepo) GetByUserID(userID string) ([]models.Job, error)     { return nil, nil }
func (f *fakeJobRepo) GetAll() ([]models.Job, error)                       { return nil, nil }

func (f *fakeJobRepo) MarkStarted(id string) (bool, error) {
	j, ok := f.jobs[id]
	if !ok || j.Status != models.JobPending {
		return false, nil
	}
	j.Status = models.JobStarted
	return true, nil
}

func (f *fakeJobRepo) MarkCompleted(id string, amount float64, paymentType string, completedAt time.Time) (bool, error) {
	j, ok := f.jobs[id]
	if !ok || j.Status == models.JobCompleted {
		return false, nil
	}
	j.Status = models.JobCompleted
	j.Payment = models.PaymentSuccess
	j.TotalAmount = amount
	j.PaymentType = paymentType
	j.CompletedAt = &completedAt
	return true, nil
}

func (f *fakeJobRepo) ExpertDashboardData(expertID string, currentStart, nextStart, previousStart time.Time) (*jobRepo.DashboardData, error) {
	return &jobRepo.DashboardData{}, nil
}
func (f *fakeJobRepo) CountCompleted() (int64, error)                          { return 0, nil }
func (f *fakeJobRepo) CountCompletedBetween(a, b time.Time) (int64, error)     { return 0, nil }
func (f *fakeJobRepo) TopBookedServices(int64) ([]models.BookedService, error) { return nil, nil }

func validInput() CreateJobInput {
	return CreateJobInput{
		ExpertID:       "exp-1",
		UserID:         "user-1",
		ServiceID:      "svc-1",
		UserLocation:   models.UserGeo{Lat: 12.97, Lng: 77.59},
		ExpertLocation: models.ExpertGeo{Latitude: 12.93, Longitude: 77.61},
		Distance:       4.2,
		TotalAmount:    120,
		RatePerHour:    40,
		Pin:            4821,
	}
}

func TestCreateJobDefaults(t *testing.T) {
	repo := newFakeJobRepo()
	svc := &DefaultJobService{Repo: repo}

	id, err := svc.CreateJob(validInput())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	job, err := svc.GetJob(id)
	require.NoError(t, err)
	assert.Equal(t, models.JobPending, job.Status)
	assert.Equal(t, models.PaymentPending, job.Payment)
	assert.Nil(t, job.CompletedAt)
	assert.Equal(t, 4821, job.Pin)
}

func TestCreateJobRequiresIdentifiers(t *testing.T) {
	svc := &DefaultJobService{Repo: newFakeJobRepo()}

	input := validInput()
	input.ServiceID = ""
	_, err := svc.CreateJob(input)
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidationFailure, utils.ErrorCode(err))

	input = validInput()
	input.Pin = 0
	_, err = svc.CreateJob(input)
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidationFailure, utils.ErrorCode(err))
}

func TestStartJobTransitions(t *testing.T) {
	repo := newFakeJobRepo()
	svc := &DefaultJobService{Repo: repo}

	id, err := svc.CreateJob(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.StartJob(id))
	job, _ := svc.GetJob(id)
	assert.Equal(t, models.JobStarted, job.Status)

	// Starting twice is an invalid transition, not a silent reset.
	err = svc.StartJob(id)
	require.Error(t, err)
	assert.Equal(t, utils.CodeInvalidTransition, utils.ErrorCode(err))
}

func TestStartJobMissing(t *testing.T) {
	svc := &DefaultJobService{Repo: newFakeJobRepo()}

	err := svc.StartJob("ghost")
	require.Error(t, err)
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
}

func TestRecordPayment(t *testing.T) {
	repo := newFakeJobRepo()
	paidAt := time.Date(2025, time.June, 20, 10, 0, 0, 0, time.UTC)
	svc := &DefaultJobService{Repo: repo, Now: func() time.Time { return paidAt }}

	id, err := svc.CreateJob(validInput())
	require.NoError(t, err)
	require.NoError(t, svc.StartJob(id))

	require.NoError(t, svc.RecordPayment(id, 150, "card"))

	job, err := svc.GetJob(id)
	require.NoError(t, err)
	assert.Equal(t, models.JobCompleted, job.Status)
	assert.Equal(t, models.PaymentSuccess, job.Payment)
	assert.Equal(t, float64(150), job.TotalAmount, "final amount overwrites the quote")
	assert.Equal(t, "card", job.PaymentType)
	require.NotNil(t, job.CompletedAt)
	assert.True(t, job.CompletedAt.Equal(paidAt))
}

func TestRecordPaymentBeforeStart(t *testing.T) {
	repo := newFakeJobRepo()
	svc := &DefaultJobService{Repo: repo}

	id, err := svc.CreateJob(validInput())
	require.NoError(t, err)

	// Payment can land before the expert marks the job started.
	require.NoError(t, svc.RecordPayment(id, 99, "cash"))
	job, _ := svc.GetJob(id)
	assert.Equal(t, models.JobCompleted, job.Status)
}

func TestRecordPaymentTwice(t *testing.T) {
	repo := newFakeJobRepo()
	svc := &DefaultJobService{Repo: repo}

	id, err := svc.CreateJob(validInput())
	require.NoError(t, err)
	require.NoError(t, svc.RecordPayment(id, 99, "cash"))

	err = svc.RecordPayment(id, 200, "card")
	require.Error(t, err)
	assert.Equal(t, utils.CodeInvalidTransition, utils.ErrorCode(err))

	// The first payment's amount stands.
	job, _ := svc.GetJob(id)
	assert.Equal(t, float64(99), job.TotalAmount)
}

func TestRecordPaymentMissing(t *testing.T) {
	svc := &DefaultJobService{Repo: newFakeJobRepo()}

	err := svc.RecordPayment("ghost", 10, "card")
	require.Error(t, err)
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
}
