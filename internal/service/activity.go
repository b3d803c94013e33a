package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/footprint-app/footprint/internal/model"
	"github.com/footprint-app/footprint/internal/repository"
	"github.com/footprint-app/footprint/internal/validation"
	"github.com/google/uuid"
)

var ErrEmptyPatch = errors.New("no fields to update")

type ActivityService struct {
	repo repository.ActivityLogRepository
	now  func() time.Time
}

func NewActivityService(repo repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{repo: repo, now: time.Now}
}

// Create logs an activity. Any activity type is accepted; types without an
// emission factor simply contribute nothing to totals.
func (s *ActivityService) Create(userID, activityType string, value float64, date time.Time) (*model.ActivityLog, error) {
	activityType = strings.TrimSpace(activityType)
	if activityType == "" {
		return nil, validation.Invalid(errors.New("activity type is required"))
	}

	now := s.now().UTC()
	if date.IsZero() {
		date = now
	}

	entry := &model.ActivityLog{
		ID:           uuid.New().String(),
		UserID:       userID,
		ActivityType: activityType,
		Value:        value,
		Date:         date.UTC(),
		CreatedAt:    now,
	}

	err := s.repo.Create(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity log: %w", err)
	}

	return entry, nil
}

func (s *ActivityService) ByID(userID, id string) (*model.ActivityLog, error) {
	return s.repo.ByID(userID, id)
}

// Activities lists a user's log, newest first.
func (s *ActivityService) Activities(userID string) ([]*model.ActivityLog, error) {
	entries, err := s.repo.Activities(userID)
	if err != nil {
		return nil, err
	}
	slices.Reverse(entries)
	return entries, nil
}

func (s *ActivityService) Update(userID, id string, patch model.ActivityLogPatch) (*model.ActivityLog, error) {
	if patch.IsEmpty() {
		return nil, validation.Invalid(ErrEmptyPatch)
	}
	if patch.ActivityType != nil && strings.TrimSpace(*patch.ActivityType) == "" {
		return nil, validation.Invalid(errors.New("activity type must not be empty"))
	}

	entry, err := s.repo.ByID(userID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(entry)
	entry.Date = entry.Date.UTC()

	err = s.repo.Update(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update activity log: %w", err)
	}

	return entry, nil
}

func (s *ActivityService) Delete(userID, id string) error {
	return s.repo.Delete(userID, id)
}
