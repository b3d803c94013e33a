package carbon

import (
	"errors"
	"time"

	"github.com/footprint-app/footprint/internal/model"
)

var errStore = errors.New("store unavailable")

type fakeActivities struct {
	entries map[string][]*model.ActivityLog
	err     error
	calls   int
}

func (f *fakeActivities) Activities(userID string) ([]*model.ActivityLog, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[userID], nil
}

type fakeGoals struct {
	goals     []*model.Goal
	listErr   error
	updateErr error
	updates   []model.Goal
}

func (f *fakeGoals) Goals(userID string) ([]*model.Goal, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*model.Goal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoals) Update(goal *model.Goal) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, *goal)
	return nil
}

type fakeTips struct {
	created []*model.Tip
	failAt  int // 1-based insert that fails; 0 never fails
}

func (f *fakeTips) Create(tip *model.Tip) error {
	if f.failAt > 0 && len(f.created)+1 == f.failAt {
		return errStore
	}
	f.created = append(f.created, tip)
	return nil
}

type fakeFactors struct {
	rows []*model.EmissionFactor
	err  error
}

func (f *fakeFactors) Factors() ([]*model.EmissionFactor, error) {
	return f.rows, f.err
}

func entry(activityType string, value float64) *model.ActivityLog {
	return &model.ActivityLog{
		ID:           activityType,
		UserID:       "user-1",
		ActivityType: activityType,
		Value:        value,
		Date:         time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}
