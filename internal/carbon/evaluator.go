package carbon

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/footprint-app/footprint/internal/model"
)

// Evaluation is the outcome of one goal-achievement pass.
type Evaluation struct {
	TotalKg float64 `json:"total_kg"`
	// Achieved holds every goal satisfied by TotalKg, including goals that
	// were already achieved before this pass.
	Achieved []*model.Goal `json:"achieved"`
	// Transitioned is the subset of Achieved that moved pending -> achieved.
	Transitioned []*model.Goal `json:"transitioned"`
}

// GoalEvaluator marks goals achieved when a user's total emissions are at or
// below their target.
type GoalEvaluator struct {
	goals      GoalStore
	aggregator *Aggregator
	now        func() time.Time
}

func NewGoalEvaluator(goals GoalStore, aggregator *Aggregator) *GoalEvaluator {
	return &GoalEvaluator{goals: goals, aggregator: aggregator, now: time.Now}
}

// Evaluate persists every qualifying goal immediately, one write per goal,
// including goals that were already achieved. Goals that do not qualify are
// neither written nor returned; an achieved goal is never reset.
func (e *GoalEvaluator) Evaluate(userID string) (*Evaluation, error) {
	goals, err := e.goals.Goals(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	total, err := e.aggregator.Total(userID)
	if err != nil {
		return nil, err
	}

	result := &Evaluation{TotalKg: total, Achieved: []*model.Goal{}, Transitioned: []*model.Goal{}}
	for _, goal := range goals {
		if !goal.Qualifies(total) {
			continue
		}

		changed, err := goal.Transition(model.GoalStateAchieved)
		if err != nil {
			return nil, err
		}
		goal.UpdatedAt = e.now().UTC()

		if err := e.goals.Update(goal); err != nil {
			return nil, fmt.Errorf("failed to persist goal %s: %w", goal.ID, err)
		}

		result.Achieved = append(result.Achieved, goal)
		if changed {
			result.Transitioned = append(result.Transitioned, goal)
			slog.Debug("goal achieved", "user_id", userID, "goal_id", goal.ID, "target_kg", goal.TargetReduction, "total_kg", total)
		}
	}

	return result, nil
}
