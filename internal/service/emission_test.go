package service

import (
	"testing"

	"github.com/footprint-app/footprint/internal/carbon"
	"github.com/footprint-app/footprint/internal/model"
	"github.com/footprint-app/footprint/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmissionServiceUsesBuiltInFactors(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	user := env.user(t)

	env.log(t, user.ID, model.ActivityCarTravel, 600)
	env.log(t, user.ID, "unicorn_rides", 1000)

	_, err := env.factors.Create(model.ActivityCarTravel, 1)
	require.NoError(t, err)

	emissions, err := env.emissions.Emissions(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 126.0, emissions.TotalKg, "persisted factors are ignored without overrides")
	require.Len(t, emissions.Breakdown, 2)
	assert.Equal(t, model.ActivityCarTravel, emissions.Breakdown[0].ActivityType)
	assert.False(t, emissions.Breakdown[1].Known)
	assert.Equal(t, 0.0, emissions.Breakdown[1].EmissionsKg)
}

func TestEmissionServiceWithPersistedOverrides(t *testing.T) {
	overlay := func(repo repository.EmissionFactorRepository) carbon.FactorSource {
		return carbon.OverlayFactors{Base: carbon.DefaultEmissionFactors(), Store: repo}
	}
	env := newTestEnv(t, overlay, nil)
	user := env.user(t)

	env.log(t, user.ID, model.ActivityCarTravel, 600)

	total, err := env.emissions.Total(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 126.0, total)

	_, err = env.factors.Create(model.ActivityCarTravel, 0.3)
	require.NoError(t, err)

	total, err = env.emissions.Total(user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 180.0, total, 1e-9, "no caching: the new factor applies immediately")
}

func TestEmissionServiceEmptyLog(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	user := env.user(t)

	total, err := env.emissions.Total(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	again, err := env.emissions.Total(user.ID)
	require.NoError(t, err)
	assert.Equal(t, total, again)
}

func TestEmissionFactorServiceValidation(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	_, err := env.factors.Create("", 1)
	assert.Error(t, err)
	_, err = env.factors.Create(model.ActivityCarTravel, -0.1)
	assert.Error(t, err)

	ef, err := env.factors.Create(model.ActivityCarTravel, 0.2)
	require.NoError(t, err)

	factors, err := env.factors.Factors()
	require.NoError(t, err)
	require.Len(t, factors, 1)

	require.NoError(t, env.factors.Delete(ef.ID))
	assert.ErrorIs(t, env.factors.Delete(ef.ID), repository.ErrEmissionFactorNotFound)
}
