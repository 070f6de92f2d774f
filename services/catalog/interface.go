package catalog

import "fixwork/models"

// CatalogService defines business logic for service catalog operations.
type CatalogService interface {
	// ListServices retrieves all catalog entries. Timestamps are withheld
	// from the read view. An empty catalog yields an empty list, not an
	// error.
	ListServices() ([]models.Service, error)
	// GetService retrieves one catalog entry by ID.
	GetService(id string) (*models.Service, error)
	// AddService creates a catalog entry, rejecting names that already
	// exist case-insensitively.
	AddService(name, description string, price float64, image string) error
	// UpdateService overwrites name, description and price; the image is
	// only overwritten when a non-empty value is supplied.
	UpdateService(id, name, description string, price float64, image string) error
	// DeleteService removes a catalog entry. A missing ID reports notFound,
	// distinguishable from an infrastructure failure.
	DeleteService(id string) error
}
