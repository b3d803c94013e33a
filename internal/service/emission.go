package service

import (
	"github.com/footprint-app/footprint/internal/carbon"
	"github.com/footprint-app/footprint/internal/metrics"
)

// Emissions is a user's current total with the per-type totals behind it.
type Emissions struct {
	UserID    string             `json:"user_id"`
	TotalKg   float64            `json:"total_kg"`
	Breakdown []carbon.TypeTotal `json:"breakdown"`
}

type EmissionService struct {
	aggregator *carbon.Aggregator
}

func NewEmissionService(aggregator *carbon.Aggregator) *EmissionService {
	return &EmissionService{aggregator: aggregator}
}

func (s *EmissionService) Total(userID string) (float64, error) {
	total, err := s.aggregator.Total(userID)
	if err != nil {
		return 0, err
	}
	metrics.RecordEmissionsComputed()
	return total, nil
}

func (s *EmissionService) Breakdown(userID string) ([]carbon.TypeTotal, error) {
	return s.aggregator.Breakdown(userID)
}

func (s *EmissionService) Emissions(userID string) (*Emissions, error) {
	total, err := s.Total(userID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.Breakdown(userID)
	if err != nil {
		return nil, err
	}

	return &Emissions{UserID: userID, TotalKg: total, Breakdown: breakdown}, nil
}
