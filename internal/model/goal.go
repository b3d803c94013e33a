package model

import (
	"errors"
	"fmt"
	"time"
)

// GoalState is derived from the persisted achieved flag.
type GoalState string

const (
	GoalStatePending  GoalState = "pending"
	GoalStateAchieved GoalState = "achieved"
)

var ErrGoalTransition = errors.New("invalid goal transition")

type Goal struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	TargetReduction float64   `db:"target_reduction" json:"target_reduction"`
	Deadline        time.Time `db:"deadline" json:"deadline"`
	Achieved        bool      `db:"achieved" json:"achieved"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

func (g *Goal) State() GoalState {
	if g.Achieved {
		return GoalStateAchieved
	}
	return GoalStatePending
}

// Transition moves the goal to the given state.
// pending -> achieved sets the flag and reports changed=true.
// achieved -> achieved and pending -> pending are no-ops.
// achieved -> pending is rejected: achievement is terminal.
func (g *Goal) Transition(to GoalState) (bool, error) {
	from := g.State()
	switch {
	case from == to:
		return false, nil
	case from == GoalStatePending && to == GoalStateAchieved:
		g.Achieved = true
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s -> %s", ErrGoalTransition, from, to)
	}
}

// Qualifies reports whether a cumulative emissions total satisfies the goal.
func (g *Goal) Qualifies(totalKg float64) bool {
	return g.TargetReduction >= totalKg
}

// GoalPatch carries a partial update. Nil fields are left unchanged.
type GoalPatch struct {
	TargetReduction *float64
	Deadline        *time.Time
	Achieved        *bool
}

// Apply merges the patch into the goal. A change of the achieved flag goes
// through Transition, so an achieved goal cannot be patched back to pending.
func (p GoalPatch) Apply(g *Goal) error {
	if p.Achieved != nil {
		to := GoalStatePending
		if *p.Achieved {
			to = GoalStateAchieved
		}
		if _, err := g.Transition(to); err != nil {
			return err
		}
	}
	if p.TargetReduction != nil {
		g.TargetReduction = *p.TargetReduction
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
	return nil
}
