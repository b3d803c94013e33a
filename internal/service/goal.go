package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/footprint-app/footprint/internal/carbon"
	"github.com/footprint-app/footprint/internal/metrics"
	"github.com/footprint-app/footprint/internal/model"
	"github.com/footprint-app/footprint/internal/repository"
	"github.com/footprint-app/footprint/internal/validation"
	"github.com/google/uuid"
)

var ErrNegativeTarget = errors.New("target reduction must not be negative")

type GoalService struct {
	repo            repository.GoalRepository
	achievementRepo repository.AchievementRepository
	userRepo        repository.UserRepository
	evaluator       *carbon.GoalEvaluator
	emailService    *EmailService
	now             func() time.Time
}

func NewGoalService(
	repo repository.GoalRepository,
	achievementRepo repository.AchievementRepository,
	userRepo repository.UserRepository,
	evaluator *carbon.GoalEvaluator,
	emailService *EmailService,
) *GoalService {
	return &GoalService{
		repo:            repo,
		achievementRepo: achievementRepo,
		userRepo:        userRepo,
		evaluator:       evaluator,
		emailService:    emailService,
		now:             time.Now,
	}
}

func (s *GoalService) Create(userID string, targetReduction float64, deadline time.Time) (*model.Goal, error) {
	if targetReduction < 0 {
		return nil, validation.Invalid(ErrNegativeTarget)
	}

	now := s.now().UTC()
	goal := &model.Goal{
		ID:              uuid.New().String(),
		UserID:          userID,
		TargetReduction: targetReduction,
		Deadline:        deadline.UTC(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) Goals(userID string) ([]*model.Goal, error) {
	return s.repo.Goals(userID)
}

// Update applies a partial update. Setting achieved=false on an achieved goal
// fails with model.ErrGoalTransition.
func (s *GoalService) Update(userID, goalID string, patch model.GoalPatch) (*model.Goal, error) {
	if patch.TargetReduction != nil && *patch.TargetReduction < 0 {
		return nil, validation.Invalid(ErrNegativeTarget)
	}

	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	wasPending := goal.State() == model.GoalStatePending
	if err := patch.Apply(goal); err != nil {
		return nil, err
	}
	if patch.Deadline != nil {
		goal.Deadline = goal.Deadline.UTC()
	}
	goal.UpdatedAt = s.now().UTC()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	if wasPending && goal.State() == model.GoalStateAchieved {
		s.recordAchievement(goal)
	}

	return goal, nil
}

func (s *GoalService) Delete(userID, goalID string) error {
	return s.repo.Delete(userID, goalID)
}

// CheckAchievements evaluates all of the user's goals against their current
// emissions total. Achievement records and notification emails for newly
// achieved goals are best-effort: failures are logged, not returned.
func (s *GoalService) CheckAchievements(userID string) (*carbon.Evaluation, error) {
	evaluation, err := s.evaluator.Evaluate(userID)
	if err != nil {
		return nil, err
	}

	if len(evaluation.Transitioned) == 0 {
		return evaluation, nil
	}

	metrics.RecordGoalsAchieved(len(evaluation.Transitioned))

	user, err := s.userRepo.ByID(userID)
	if err != nil {
		slog.Warn("failed to load user for goal notifications", "error", err, "user_id", userID)
	}

	for _, goal := range evaluation.Transitioned {
		s.recordAchievement(goal)

		if user == nil {
			continue
		}
		err := s.emailService.SendGoalAchievedEmail(user.Email, user.Username, goal, evaluation.TotalKg)
		if err != nil {
			slog.Warn("failed to send goal achieved email", "error", err, "user_id", userID, "goal_id", goal.ID)
		}
	}

	slog.Info("goals achieved", "user_id", userID, "count", len(evaluation.Transitioned), "total_kg", evaluation.TotalKg)
	return evaluation, nil
}

func (s *GoalService) recordAchievement(goal *model.Goal) {
	achievement := &model.Achievement{
		ID:        uuid.New().String(),
		UserID:    goal.UserID,
		Type:      model.AchievementGoalAchieved,
		AwardedAt: s.now().UTC(),
	}

	err := s.achievementRepo.Create(achievement)
	if err != nil {
		slog.Warn("failed to record achievement", "error", err, "user_id", goal.UserID, "goal_id", goal.ID)
	}
}
