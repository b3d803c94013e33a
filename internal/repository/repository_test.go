package repository

import (
	"testing"
	"time"

	"github.com/footprint-app/footprint/internal/db"
	"github.com/footprint-app/footprint/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func newTestUser(t *testing.T, database *sqlx.DB) *model.User {
	t.Helper()
	user := &model.User{
		ID:           uuid.New().String(),
		Username:     "ada",
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    baseTime,
	}
	require.NoError(t, NewUserRepository(database).Create(user))
	return user
}

func TestUserRepository(t *testing.T) {
	database := db.OpenTest(t)
	repo := NewUserRepository(database)

	info := "cycles to work"
	user := &model.User{
		ID:           uuid.New().String(),
		Username:     "grace",
		Email:        "grace@example.com",
		PasswordHash: "hash",
		ProfileInfo:  &info,
		CreatedAt:    baseTime,
	}
	require.NoError(t, repo.Create(user))

	dup := *user
	dup.ID = uuid.New().String()
	require.ErrorIs(t, repo.Create(&dup), ErrDuplicateEmail)

	got, err := repo.ByEmail("grace@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	require.NotNil(t, got.ProfileInfo)
	assert.Equal(t, info, *got.ProfileInfo)

	_, err = repo.ByID("missing")
	require.ErrorIs(t, err, ErrUserNotFound)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(user.ID))
	require.ErrorIs(t, repo.Delete(user.ID), ErrUserNotFound)
}

func TestActivityLogRepository(t *testing.T) {
	database := db.OpenTest(t)
	user := newTestUser(t, database)
	other := newTestUser(t, database)
	repo := NewActivityLogRepository(database)

	later := &model.ActivityLog{ID: uuid.New().String(), UserID: user.ID, ActivityType: model.ActivityCarTravel, Value: 600, Date: baseTime.Add(time.Hour), CreatedAt: baseTime}
	earlier := &model.ActivityLog{ID: uuid.New().String(), UserID: user.ID, ActivityType: model.ActivityWaterUsage, Value: 12.5, Date: baseTime, CreatedAt: baseTime}
	foreign := &model.ActivityLog{ID: uuid.New().String(), UserID: other.ID, ActivityType: model.ActivityAirTravel, Value: 1, Date: baseTime, CreatedAt: baseTime}
	for _, e := range []*model.ActivityLog{later, earlier, foreign} {
		require.NoError(t, repo.Create(e))
	}

	entries, err := repo.Activities(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, earlier.ID, entries[0].ID, "chronological order")
	assert.Equal(t, later.ID, entries[1].ID)
	assert.Equal(t, 600.0, entries[1].Value)
	assert.True(t, entries[1].Date.Equal(later.Date))

	empty, err := repo.Activities("nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = repo.ByID(user.ID, foreign.ID)
	require.ErrorIs(t, err, ErrActivityNotFound, "entries are scoped to their owner")

	later.Value = 10
	require.NoError(t, repo.Update(later))
	got, err := repo.ByID(user.ID, later.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Value)

	missing := *later
	missing.ID = "missing"
	require.ErrorIs(t, repo.Update(&missing), ErrActivityNotFound)

	require.NoError(t, repo.Delete(user.ID, later.ID))
	require.ErrorIs(t, repo.Delete(user.ID, later.ID), ErrActivityNotFound)
}

func TestGoalRepository(t *testing.T) {
	database := db.OpenTest(t)
	user := newTestUser(t, database)
	repo := NewGoalRepository(database)

	goal := &model.Goal{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		TargetReduction: 200,
		Deadline:        baseTime.AddDate(0, 3, 0),
		CreatedAt:       baseTime,
		UpdatedAt:       baseTime,
	}
	require.NoError(t, repo.Create(goal))

	goals, err := repo.Goals(user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.False(t, goals[0].Achieved)
	assert.Equal(t, 200.0, goals[0].TargetReduction)

	goal.Achieved = true
	goal.UpdatedAt = baseTime.Add(time.Minute)
	require.NoError(t, repo.Update(goal))
	require.NoError(t, repo.Update(goal), "rewriting an unchanged goal still succeeds")

	got, err := repo.ByID(user.ID, goal.ID)
	require.NoError(t, err)
	assert.True(t, got.Achieved)
	assert.Equal(t, model.GoalStateAchieved, got.State())

	_, err = repo.ByID("someone-else", goal.ID)
	require.ErrorIs(t, err, ErrGoalNotFound)

	require.NoError(t, repo.Delete(user.ID, goal.ID))
	require.ErrorIs(t, repo.Delete(user.ID, goal.ID), ErrGoalNotFound)
}

func TestTipRepository(t *testing.T) {
	database := db.OpenTest(t)
	user := newTestUser(t, database)
	repo := NewTipRepository(database)

	for i, category := range []string{"energy", "food"} {
		tip := &model.Tip{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			Text:      "tip " + category,
			Category:  category,
			CreatedAt: baseTime.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Create(tip))
	}

	tips, err := repo.Tips(user.ID)
	require.NoError(t, err)
	require.Len(t, tips, 2)
	assert.Equal(t, "food", tips[0].Category, "newest first")

	got, err := repo.ByID(user.ID, tips[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "tip energy", got.Text)

	require.NoError(t, repo.Delete(user.ID, got.ID))
	_, err = repo.ByID(user.ID, got.ID)
	require.ErrorIs(t, err, ErrTipNotFound)
}

func TestTipRepositoryRejectsUnknownUser(t *testing.T) {
	database := db.OpenTest(t)
	repo := NewTipRepository(database)

	err := repo.Create(&model.Tip{ID: uuid.New().String(), UserID: "ghost", Text: "x", Category: "y", CreatedAt: baseTime})
	require.Error(t, err, "foreign key enforcement")
}

func TestReportRepository(t *testing.T) {
	database := db.OpenTest(t)
	user := newTestUser(t, database)
	repo := NewReportRepository(database)

	older := &model.Report{ID: uuid.New().String(), UserID: user.ID, Summary: "first", GeneratedAt: baseTime}
	newer := &model.Report{ID: uuid.New().String(), UserID: user.ID, Summary: "second", GeneratedAt: baseTime.Add(time.Hour), ArchiveKey: "reports/x.md"}
	require.NoError(t, repo.Create(older))
	require.NoError(t, repo.Create(newer))

	reports, err := repo.Reports(user.ID)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, newer.ID, reports[0].ID)
	assert.Equal(t, "reports/x.md", reports[0].ArchiveKey)

	got, err := repo.ByID(user.ID, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Summary)
	assert.True(t, got.GeneratedAt.Equal(baseTime))

	_, err = repo.ByID(user.ID, "missing")
	require.ErrorIs(t, err, ErrReportNotFound)
}

func TestEmissionFactorRepository(t *testing.T) {
	database := db.OpenTest(t)
	repo := NewEmissionFactorRepository(database)

	first := &model.EmissionFactor{ID: uuid.New().String(), ActivityType: model.ActivityCarTravel, Factor: 0.3, CreatedAt: baseTime}
	second := &model.EmissionFactor{ID: uuid.New().String(), ActivityType: model.ActivityCarTravel, Factor: 0.25, CreatedAt: baseTime.Add(time.Second)}
	require.NoError(t, repo.Create(second))
	require.NoError(t, repo.Create(first))

	factors, err := repo.Factors()
	require.NoError(t, err)
	require.Len(t, factors, 2)
	assert.Equal(t, first.ID, factors[0].ID, "oldest first")
	assert.Equal(t, 0.25, factors[1].Factor)

	got, err := repo.ByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ActivityCarTravel, got.ActivityType)

	require.NoError(t, repo.Delete(first.ID))
	require.ErrorIs(t, repo.Delete(first.ID), ErrEmissionFactorNotFound)
}

func TestAchievementRepository(t *testing.T) {
	database := db.OpenTest(t)
	user := newTestUser(t, database)
	repo := NewAchievementRepository(database)

	require.NoError(t, repo.Create(&model.Achievement{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Type:      model.AchievementGoalAchieved,
		AwardedAt: baseTime,
	}))

	achievements, err := repo.Achievements(user.ID)
	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.Equal(t, model.AchievementGoalAchieved, achievements[0].Type)
}
