package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/footprint-app/footprint/internal/model"
	"github.com/footprint-app/footprint/internal/repository"
	"github.com/footprint-app/footprint/internal/validation"
	"github.com/google/uuid"
)

// EmissionFactorService manages persisted factors. They only affect
// aggregation when EMISSION_FACTOR_OVERRIDES is enabled.
type EmissionFactorService struct {
	repo repository.EmissionFactorRepository
	now  func() time.Time
}

func NewEmissionFactorService(repo repository.EmissionFactorRepository) *EmissionFactorService {
	return &EmissionFactorService{repo: repo, now: time.Now}
}

func (s *EmissionFactorService) Create(activityType string, factor float64) (*model.EmissionFactor, error) {
	activityType = strings.TrimSpace(activityType)
	if activityType == "" {
		return nil, validation.Invalid(errors.New("activity type is required"))
	}
	if factor < 0 {
		return nil, validation.Invalid(errors.New("emission factor must not be negative"))
	}

	ef := &model.EmissionFactor{
		ID:           uuid.New().String(),
		ActivityType: activityType,
		Factor:       factor,
		CreatedAt:    s.now().UTC(),
	}

	err := s.repo.Create(ef)
	if err != nil {
		return nil, fmt.Errorf("failed to create emission factor: %w", err)
	}

	slog.Info("emission factor stored", "activity_type", activityType, "factor", factor)
	return ef, nil
}

func (s *EmissionFactorService) Factors() ([]*model.EmissionFactor, error) {
	return s.repo.Factors()
}

func (s *EmissionFactorService) Delete(id string) error {
	return s.repo.Delete(id)
}
