package serviceRepo

import (
	"time"

	"fixwork/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// GetAll retrieves all services with an optional projection.
	GetAll(projection bson.M) ([]models.Service, error)
	// GetByID retrieves a service by its unique ID with an optional
	// projection. Returns (nil, nil) when no service matches.
	GetByID(id string, projection bson.M) (*models.Service, error)
	// GetByName retrieves a service by name, matched case-insensitively.
	// Returns (nil, nil) when no service matches.
	GetByName(name string) (*models.Service, error)
	// Create inserts a new service record.
	Create(svc *models.Service) error
	// Update overwrites the given fields on the service with the given ID.
	// Reports whether a service matched.
	Update(id string, fields bson.M) (bool, error)
	// Delete removes a service record by its ID. Reports whether a service
	// matched.
	Delete(id string) (bool, error)
	// CountAll returns the total number of service records.
	CountAll() (int64, error)
	// CountCreatedBetween counts services created in [from, to).
	CountCreatedBetween(from, to time.Time) (int64, error)
}
