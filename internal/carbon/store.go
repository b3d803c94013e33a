package carbon

import "github.com/footprint-app/footprint/internal/model"

// ActivityLister reads a user's activity log.
type ActivityLister interface {
	Activities(userID string) ([]*model.ActivityLog, error)
}

// GoalStore reads and persists a user's goals.
type GoalStore interface {
	Goals(userID string) ([]*model.Goal, error)
	Update(goal *model.Goal) error
}

// TipStore persists generated tips.
type TipStore interface {
	Create(tip *model.Tip) error
}

// FactorStore lists persisted emission factor overrides, oldest first.
type FactorStore interface {
	Factors() ([]*model.EmissionFactor, error)
}
