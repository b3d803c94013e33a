package service

import (
	"log/slog"

	"github.com/footprint-app/footprint/internal/carbon"
	"github.com/footprint-app/footprint/internal/metrics"
	"github.com/footprint-app/footprint/internal/model"
	"github.com/footprint-app/footprint/internal/repository"
)

type TipService struct {
	repo       repository.TipRepository
	classifier *carbon.Classifier
	bridge     *carbon.TipBridge
}

func NewTipService(repo repository.TipRepository, classifier *carbon.Classifier) *TipService {
	return &TipService{
		repo:       repo,
		classifier: classifier,
		bridge:     carbon.NewTipBridge(repo),
	}
}

// Generate classifies the user's activity log and persists one tip per
// advisory. Every call appends; earlier tips are never deduplicated.
func (s *TipService) Generate(userID string) ([]carbon.Advisory, error) {
	advisories, err := s.classifier.Classify(userID)
	if err != nil {
		return nil, err
	}

	persisted, err := s.bridge.Persist(userID, advisories)
	if err != nil {
		return nil, err
	}

	for _, advisory := range persisted {
		metrics.RecordTipGenerated(advisory.Category)
	}
	slog.Debug("tips generated", "user_id", userID, "count", len(persisted))
	return persisted, nil
}

func (s *TipService) Tips(userID string) ([]*model.Tip, error) {
	return s.repo.Tips(userID)
}

func (s *TipService) Delete(userID, tipID string) error {
	return s.repo.Delete(userID, tipID)
}
