package reporting

import (
	"fmt"

	"fixwork/models"
)

// topBookedLimit caps the most-booked services ranking.
const topBookedLimit = 5

// PlatformServiceData computes the platform-wide reporting aggregate:
// catalog size and growth, completed-job volume and growth, and the top
// booked services.
func (s *DefaultReportingService) PlatformServiceData() (*models.ServiceData, error) {
	previousStart, currentStart, nextStart := MonthWindows(s.now())

	totalServices, err := s.Services.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count services: %w", err)
	}
	servicesThisMonth, err := s.Services.CountCreatedBetween(currentStart, nextStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count current month services: %w", err)
	}
	servicesLastMonth, err := s.Services.CountCreatedBetween(previousStart, currentStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count previous month services: %w", err)
	}

	totalCompleted, err := s.Jobs.CountCompleted()
	if err != nil {
		return nil, fmt.Errorf("failed to count completed jobs: %w", err)
	}
	completedThisMonth, err := s.Jobs.CountCompletedBetween(currentStart, nextStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count current month completed jobs: %w", err)
	}
	completedLastMonth, err := s.Jobs.CountCompletedBetween(previousStart, currentStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count previous month completed jobs: %w", err)
	}

	topBooked, err := s.Jobs.TopBookedServices(topBookedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank booked services: %w", err)
	}
	if topBooked == nil {
		topBooked = []models.BookedService{}
	}

	return &models.ServiceData{
		TotalServices:           totalServices,
		ServiceGrowthRate:       GrowthRate(float64(servicesThisMonth), float64(servicesLastMonth)),
		TotalJobsCompleted:      totalCompleted,
		JobCompletionGrowthRate: GrowthRate(float64(completedThisMonth), float64(completedLastMonth)),
		TopBookedServices:       topBooked,
	}, nil
}
