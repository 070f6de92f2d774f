package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fixwork/models"
	"fixwork/services/jobs"
	"fixwork/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// stubCatalog returns canned results so the envelope translation can be
// exercised without a store.
type stubCatalog struct {
	services []models.Service
	err      error
}

func (s *stubCatalog) ListServices() ([]models.Service, error) { return s.services, s.err }
func (s *stubCatalog) GetService(id string) (*models.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.services[0], nil
}
func (s *stubCatalog) AddService(name, description string, price float64, image string) error {
	return s.err
}
func (s *stubCatalog) UpdateService(id, name, description string, price float64, image string) error {
	return s.err
}
func (s *stubCatalog) DeleteService(id string) error { return s.err }

func newCatalogRouter(svc *stubCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCatalogHandler(svc, zap.NewNop())
	r.GET("/api/services", h.ListServicesHandler)
	r.GET("/api/services/:id", h.GetServiceHandler)
	r.POST("/api/services", h.AddServiceHandler)
	r.DELETE("/api/services/:id", h.DeleteServiceHandler)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not a JSON object: %v (body %q)", err, w.Body.String())
	}
	return w, payload
}

func TestFailuresAreEncodedInTheBody(t *testing.T) {
	svc := &stubCatalog{err: utils.NewNotFound("service with id ghost not found")}
	r := newCatalogRouter(svc)

	w, payload := doRequest(t, r, http.MethodDelete, "/api/services/ghost", "")

	// The transport never signals failure.
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if payload["error"] != "service with id ghost not found" {
		t.Errorf("error = %q, want the not-found message", payload["error"])
	}
	if payload["code"] != utils.CodeNotFound {
		t.Errorf("code = %q, want %q", payload["code"], utils.CodeNotFound)
	}
}

func TestSuccessEnvelope(t *testing.T) {
	svc := &stubCatalog{}
	r := newCatalogRouter(svc)

	w, payload := doRequest(t, r, http.MethodDelete, "/api/services/some-id", "")

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if payload["message"] != "success" {
		t.Errorf("message = %q, want success", payload["message"])
	}
	if _, hasErr := payload["error"]; hasErr {
		t.Errorf("success envelope must not carry an error field: %v", payload)
	}
}

func TestMalformedBodyIsValidationFailure(t *testing.T) {
	svc := &stubCatalog{}
	r := newCatalogRouter(svc)

	w, payload := doRequest(t, r, http.MethodPost, "/api/services", `{"name":`)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if payload["code"] != utils.CodeValidationFailure {
		t.Errorf("code = %q, want %q", payload["code"], utils.CodeValidationFailure)
	}
}

func TestListServicesPayload(t *testing.T) {
	svc := &stubCatalog{services: []models.Service{
		{ID: "s1", Name: "Plumbing", Description: "pipes", Price: 50},
	}}
	r := newCatalogRouter(svc)

	_, payload := doRequest(t, r, http.MethodGet, "/api/services", "")

	list, ok := payload["services"].([]any)
	if !ok {
		t.Fatalf("services field missing or wrong shape: %v", payload)
	}
	if len(list) != 1 {
		t.Fatalf("services has %d entries, want 1", len(list))
	}
	entry := list[0].(map[string]any)
	if entry["name"] != "Plumbing" {
		t.Errorf("name = %q, want Plumbing", entry["name"])
	}
}

// stubJobs drives the job handler envelope tests.
type stubJobs struct {
	createdID string
	lastInput jobs.CreateJobInput
	err       error
}

func (s *stubJobs) CreateJob(input jobs.CreateJobInput) (string, error) {
	s.lastInput = input
	return s.createdID, s.err
}
func (s *stubJobs) GetJob(id string) (*models.Job, error) { return nil, s.err }
func (s *stubJobs) StartJob(id string) error              { return s.err }
func (s *stubJobs) RecordPayment(id string, amount float64, paymentType string) error {
	return s.err
}
func (s *stubJobs) PreviousJobsForExpert(expertID string) ([]models.Job, error) { return nil, s.err }
func (s *stubJobs) PreviousJobsForUser(userID string) ([]models.Job, error)     { return nil, s.err }
func (s *stubJobs) AllJobs() ([]models.Job, error)                              { return nil, s.err }

func TestCreateJobReturnsID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubJobs{createdID: "job-123"}
	r := gin.New()
	h := NewJobHandler(svc, zap.NewNop())
	r.POST("/api/jobs", h.CreateJobHandler)

	body := `{
		"expertId": "exp-1",
		"userId": "user-1",
		"serviceId": "svc-1",
		"userLocation": {"lat": 12.97, "lng": 77.59},
		"expertLocation": {"latitude": 12.93, "longitude": 77.61},
		"distance": 4.2,
		"totalAmount": 120,
		"ratePerHour": 40,
		"pin": 4821
	}`
	w, payload := doRequest(t, r, http.MethodPost, "/api/jobs", body)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if payload["id"] != "job-123" {
		t.Errorf("id = %q, want job-123", payload["id"])
	}
	if svc.lastInput.Pin != 4821 {
		t.Errorf("pin = %d, want 4821", svc.lastInput.Pin)
	}
	if svc.lastInput.ExpertLocation.Longitude != 77.61 {
		t.Errorf("expert longitude = %v, want 77.61", svc.lastInput.ExpertLocation.Longitude)
	}
}

func TestCreateJobMissingPinRejectedAtBoundary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubJobs{createdID: "job-123"}
	r := gin.New()
	h := NewJobHandler(svc, zap.NewNop())
	r.POST("/api/jobs", h.CreateJobHandler)

	body := `{
		"expertId": "exp-1",
		"userId": "user-1",
		"serviceId": "svc-1",
		"userLocation": {"lat": 1, "lng": 2},
		"expertLocation": {"latitude": 3, "longitude": 4}
	}`
	w, payload := doRequest(t, r, http.MethodPost, "/api/jobs", body)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if payload["code"] != utils.CodeValidationFailure {
		t.Errorf("code = %q, want %q", payload["code"], utils.CodeValidationFailure)
	}
}
