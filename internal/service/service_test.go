package service

import (
	"testing"
	"time"

	"github.com/footprint-app/footprint/internal/carbon"
	"github.com/footprint-app/footprint/internal/db"
	"github.com/footprint-app/footprint/internal/markdown"
	"github.com/footprint-app/footprint/internal/model"
	"github.com/footprint-app/footprint/internal/repository"
	"github.com/footprint-app/footprint/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	users        repository.UserRepository
	activityRepo repository.ActivityLogRepository
	factorRepo   repository.EmissionFactorRepository
	achievements repository.AchievementRepository

	auth       *AuthService
	activities *ActivityService
	factors    *EmissionFactorService
	emissions  *EmissionService
	tips       *TipService
	goals      *GoalService
	reports    *ReportService
}

// newTestEnv wires every service over a fresh SQLite database, the way the
// application does. archive may be nil.
func newTestEnv(t *testing.T, factorSource func(repository.EmissionFactorRepository) carbon.FactorSource, archive storage.Archive) *testEnv {
	t.Helper()

	database := db.OpenTest(t)
	env := &testEnv{
		users:        repository.NewUserRepository(database),
		activityRepo: repository.NewActivityLogRepository(database),
		factorRepo:   repository.NewEmissionFactorRepository(database),
		achievements: repository.NewAchievementRepository(database),
	}
	goalRepo := repository.NewGoalRepository(database)
	tipRepo := repository.NewTipRepository(database)
	reportRepo := repository.NewReportRepository(database)

	source := carbon.FactorSource(carbon.StaticFactors{Base: carbon.DefaultEmissionFactors()})
	if factorSource != nil {
		source = factorSource(env.factorRepo)
	}

	emailService := NewEmailService("", "noreply@example.com", "http://localhost:8090", "Footprint", true)
	aggregator := carbon.NewAggregator(env.activityRepo, source)

	env.auth = NewAuthService(env.users, emailService, "test-secret", time.Hour)
	env.activities = NewActivityService(env.activityRepo)
	env.factors = NewEmissionFactorService(env.factorRepo)
	env.emissions = NewEmissionService(aggregator)
	env.tips = NewTipService(tipRepo, carbon.NewClassifier(env.activityRepo, carbon.DefaultTipRules()))
	env.goals = NewGoalService(goalRepo, env.achievements, env.users, carbon.NewGoalEvaluator(goalRepo, aggregator), emailService)
	env.reports = NewReportService(reportRepo, aggregator, archive, markdown.NewParser())
	return env
}

func (e *testEnv) user(t *testing.T) *model.User {
	t.Helper()
	user := &model.User{
		ID:           uuid.New().String(),
		Username:     "tester",
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "unused",
		CreatedAt:    testDay,
	}
	require.NoError(t, e.users.Create(user))
	return user
}

func (e *testEnv) log(t *testing.T, userID, activityType string, value float64) *model.ActivityLog {
	t.Helper()
	entry, err := e.activities.Create(userID, activityType, value, testDay)
	require.NoError(t, err)
	return entry
}
