package service

import (
	"github.com/footprint-app/footprint/internal/model"
	"github.com/footprint-app/footprint/internal/repository"
)

type AchievementService struct {
	repo repository.AchievementRepository
}

func NewAchievementService(repo repository.AchievementRepository) *AchievementService {
	return &AchievementService{repo: repo}
}

func (s *AchievementService) Achievements(userID string) ([]*model.Achievement, error) {
	return s.repo.Achievements(userID)
}
