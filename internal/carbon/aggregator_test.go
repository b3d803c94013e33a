package carbon

import (
	"testing"

	"github.com/footprint-app/footprint/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEmissionFactors(t *testing.T) {
	table := DefaultEmissionFactors()

	want := map[string]float64{
		"car_travel":                  0.21,
		"public_transport":            0.1,
		"electricity_usage":           0.5,
		"natural_gas_usage":           2.2,
		"waste_generation":            0.3,
		"water_usage":                 0.001,
		"air_travel":                  0.25,
		"food_consumption_meat":       27,
		"food_consumption_vegetables": 2,
		"clothing_purchases":          14,
	}
	assert.Equal(t, len(want), table.Len())
	for activityType, factor := range want {
		assert.Equal(t, factor, table.Factor(activityType), activityType)
	}
	assert.Zero(t, table.Factor("space_tourism"))
}

func TestFactorTableIsImmutable(t *testing.T) {
	src := map[string]float64{"car_travel": 1}
	table := NewFactorTable(src)
	src["car_travel"] = 99

	assert.Equal(t, 1.0, table.Factor("car_travel"))

	overlaid := table.Overlay(map[string]float64{"car_travel": 2, "bike": 0})
	assert.Equal(t, 1.0, table.Factor("car_travel"))
	assert.Equal(t, 2.0, overlaid.Factor("car_travel"))
	assert.Equal(t, []string{"bike", "car_travel"}, overlaid.Types())
}

func TestSum(t *testing.T) {
	table := DefaultEmissionFactors()

	tests := []struct {
		name    string
		entries []*model.ActivityLog
		want    float64
	}{
		{"empty set is zero", nil, 0},
		{"single car trip", []*model.ActivityLog{entry("car_travel", 600)}, 126},
		{"unknown type contributes zero", []*model.ActivityLog{entry("space_tourism", 1e6)}, 0},
		{
			"mixed types",
			[]*model.ActivityLog{
				entry("car_travel", 100),
				entry("food_consumption_meat", 2),
				entry("unknown", 50),
				entry("water_usage", 1000),
			},
			21 + 54 + 0 + 1,
		},
		{"negative values are not rejected", []*model.ActivityLog{entry("clothing_purchases", -1)}, -14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Sum(tt.entries, table), 1e-9)
		})
	}
}

func TestBreakdown(t *testing.T) {
	entries := []*model.ActivityLog{
		entry("car_travel", 100),
		entry("unknown", 3),
		entry("car_travel", 50),
	}

	got := Breakdown(entries, DefaultEmissionFactors())
	require.Len(t, got, 2)

	assert.Equal(t, "car_travel", got[0].ActivityType)
	assert.Equal(t, 2, got[0].Entries)
	assert.InDelta(t, 150, got[0].Value, 1e-9)
	assert.InDelta(t, 31.5, got[0].EmissionsKg, 1e-9)
	assert.True(t, got[0].Known)

	assert.Equal(t, "unknown", got[1].ActivityType)
	assert.False(t, got[1].Known)
	assert.Zero(t, got[1].EmissionsKg)
}

func TestAggregatorTotal(t *testing.T) {
	activities := &fakeActivities{entries: map[string][]*model.ActivityLog{
		"user-1": {entry("car_travel", 600)},
	}}
	agg := NewAggregator(activities, StaticFactors{Base: DefaultEmissionFactors()})

	first, err := agg.Total("user-1")
	require.NoError(t, err)
	assert.InDelta(t, 126.0, first, 1e-9)

	second, err := agg.Total("user-1")
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeated calls over unchanged data are identical")
	assert.Equal(t, 2, activities.calls, "every call rereads the activity log")

	empty, err := agg.Total("nobody")
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestAggregatorTotalPropagatesStoreFailure(t *testing.T) {
	agg := NewAggregator(&fakeActivities{err: errStore}, StaticFactors{Base: DefaultEmissionFactors()})

	_, err := agg.Total("user-1")
	require.ErrorIs(t, err, errStore)
}

func TestOverlayFactors(t *testing.T) {
	store := &fakeFactors{rows: []*model.EmissionFactor{
		{ActivityType: "car_travel", Factor: 0.3},
		{ActivityType: "e_bike", Factor: 0.01},
		{ActivityType: "car_travel", Factor: 0.25},
	}}
	activities := &fakeActivities{entries: map[string][]*model.ActivityLog{
		"user-1": {entry("car_travel", 100), entry("e_bike", 100), entry("air_travel", 100)},
	}}
	agg := NewAggregator(activities, OverlayFactors{Base: DefaultEmissionFactors(), Store: store})

	total, err := agg.Total("user-1")
	require.NoError(t, err)
	// later car_travel row wins (0.25), e_bike is new (0.01), air_travel keeps default (0.25)
	assert.InDelta(t, 25+1+25, total, 1e-9)

	store.err = errStore
	_, err = agg.Total("user-1")
	require.ErrorIs(t, err, errStore)
}

func TestAggregatorBreakdown(t *testing.T) {
	activities := &fakeActivities{entries: map[string][]*model.ActivityLog{
		"user-1": {entry("electricity_usage", 100)},
	}}
	agg := NewAggregator(activities, StaticFactors{Base: DefaultEmissionFactors()})

	got, err := agg.Breakdown("user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 50, got[0].EmissionsKg, 1e-9)
}
