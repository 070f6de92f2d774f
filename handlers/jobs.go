package handlers

import (
	"net/http"

	"fixwork/models"
	"fixwork/services/jobs"
	"fixwork/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobHandler exposes the job lifecycle operations.
type JobHandler struct {
	Svc    jobs.JobService
	Logger *zap.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(svc jobs.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{Svc: svc, Logger: logger}
}

type createJobRequest struct {
	ExpertID     string `json:"expertId" binding:"required"`
	UserID       string `json:"userId" binding:"required"`
	ServiceID    string `json:"serviceId" binding:"required"`
	UserLocation struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"userLocation" binding:"required"`
	ExpertLocation struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"expertLocation" binding:"required"`
	Notes       string  `json:"notes"`
	Distance    float64 `json:"distance"`
	TotalAmount float64 `json:"totalAmount"`
	RatePerHour float64 `json:"ratePerHour"`
	Pin         int     `json:"pin" binding:"required"`
}

type recordPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	PaymentType string  `json:"paymentType"`
}

// CreateJobHandler handles POST /api/jobs.
func (h *JobHandler) CreateJobHandler(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.NewValidationFailure("invalid request body: %v", err))
		return
	}

	id, err := h.Svc.CreateJob(jobs.CreateJobInput{
		ExpertID:  req.ExpertID,
		UserID:    req.UserID,
		ServiceID: req.ServiceID,
		UserLocation: models.UserGeo{
			Lat: req.UserLocation.Lat,
			Lng: req.UserLocation.Lng,
		},
		ExpertLocation: models.ExpertGeo{
			Latitude:  req.ExpertLocation.Latitude,
			Longitude: req.ExpertLocation.Longitude,
		},
		Notes:       req.Notes,
		Distance:    req.Distance,
		TotalAmount: req.TotalAmount,
		RatePerHour: req.RatePerHour,
		Pin:         req.Pin,
	})
	if err != nil {
		h.Logger.Error("CreateJob: failed to create job", zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GetJobDataHandler handles GET /api/jobs/:id.
func (h *JobHandler) GetJobDataHandler(c *gin.Context) {
	id := c.Param("id")

	job, err := h.Svc.GetJob(id)
	if err != nil {
		h.Logger.Warn("GetJobData: failed to fetch job", zap.String("jobID", id), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// StartJobHandler handles POST /api/jobs/:id/start.
func (h *JobHandler) StartJobHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Svc.StartJob(id); err != nil {
		h.Logger.Warn("StartJob: failed to start job", zap.String("jobID", id), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// RecordPaymentHandler handles POST /api/jobs/:id/payment.
func (h *JobHandler) RecordPaymentHandler(c *gin.Context) {
	id := c.Param("id")

	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.NewValidationFailure("invalid request body: %v", err))
		return
	}

	if err := h.Svc.RecordPayment(id, req.Amount, req.PaymentType); err != nil {
		h.Logger.Warn("RecordPayment: failed to record payment", zap.String("jobID", id), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// PreviousJobsForExpertHandler handles GET /api/experts/:id/jobs.
func (h *JobHandler) PreviousJobsForExpertHandler(c *gin.Context) {
	expertID := c.Param("id")

	jobList, err := h.Svc.PreviousJobsForExpert(expertID)
	if err != nil {
		h.Logger.Error("PreviousJobsForExpert: failed to fetch jobs", zap.String("expertID", expertID), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobList})
}

// PreviousJobsForUserHandler handles GET /api/users/:id/jobs.
func (h *JobHandler) PreviousJobsForUserHandler(c *gin.Context) {
	userID := c.Param("id")

	jobList, err := h.Svc.PreviousJobsForUser(userID)
	if err != nil {
		h.Logger.Error("PreviousJobsForUser: failed to fetch jobs", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobList})
}

// GetAllJobsHandler handles GET /api/jobs.
func (h *JobHandler) GetAllJobsHandler(c *gin.Context) {
	jobList, err := h.Svc.AllJobs()
	if err != nil {
		h.Logger.Error("GetAllJobs: failed to fetch jobs", zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobList})
}
