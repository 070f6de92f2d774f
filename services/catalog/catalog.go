package catalog

import (
	"fmt"
	"strings"

	serviceRepo "fixwork/database/repository/service"
	"fixwork/models"
	"fixwork/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// readProjection withholds timestamps from read responses.
var readProjection = bson.M{
	"_id":          0,
	"id":           1,
	"name":         1,
	"description":  1,
	"price":        1,
	"serviceImage": 1,
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}

// ListServices retrieves all catalog entries without timestamps.
func (s *DefaultCatalogService) ListServices() ([]models.Service, error) {
	services, err := s.Repo.GetAll(readProjection)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, nil
}

// GetService retrieves one catalog entry by ID without timestamps.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id, readProjection)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, utils.NewNotFound("service with id %s not found", id)
	}
	return svc, nil
}

// AddService creates a catalog entry after checking for a case-insensitive
// duplicate name. The unique collation index on name backs this check up at
// the store level.
func (s *DefaultCatalogService) AddService(name, description string, price float64, image string) error {
	if strings.TrimSpace(name) == "" {
		return utils.NewValidationFailure("service name is required")
	}
	if price < 0 {
		return utils.NewValidationFailure("service price must not be negative")
	}

	existing, err := s.Repo.GetByName(name)
	if err != nil {
		return fmt.Errorf("failed to check for existing service: %w", err)
	}
	if existing != nil {
		return utils.NewAlreadyExists("service with name %q already exists", name)
	}

	svc := &models.Service{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  description,
		Price:        price,
		ServiceImage: image,
	}
	if err := s.Repo.Create(svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// UpdateService overwrites name, description and price. The image field is
// only touched when a non-empty value is supplied.
func (s *DefaultCatalogService) UpdateService(id, name, description string, price float64, image string) error {
	if strings.TrimSpace(name) == "" {
		return utils.NewValidationFailure("service name is required")
	}
	if price < 0 {
		return utils.NewValidationFailure("service price must not be negative")
	}

	existing, err := s.Repo.GetByID(id, bson.M{"id": 1})
	if err != nil {
		return fmt.Errorf("failed to fetch service for update: %w", err)
	}
	if existing == nil {
		return utils.NewNotFound("service with id %s not found", id)
	}

	fields := bson.M{
		"name":        name,
		"description": description,
		"price":       price,
	}
	if image != "" {
		fields["serviceImage"] = image
	}

	matched, err := s.Repo.Update(id, fields)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if !matched {
		return utils.NewNotFound("service with id %s not found", id)
	}
	return nil
}

// DeleteService removes a catalog entry. A missing ID is reported as
// notFound so callers can tell it apart from an infrastructure failure.
func (s *DefaultCatalogService) DeleteService(id string) error {
	deleted, err := s.Repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if !deleted {
		return utils.NewNotFound("service with id %s not found", id)
	}
	return nil
}
