package carbon

import (
	"fmt"
	"sort"

	"github.com/footprint-app/footprint/internal/model"
)

// Sum returns the total kg CO2e of entries under table.
// Entries whose type has no factor add 0. An empty set sums to exactly 0.
func Sum(entries []*model.ActivityLog, table FactorTable) float64 {
	total := 0.0
	for _, entry := range entries {
		total += entry.Value * table.Factor(entry.ActivityType)
	}
	return total
}

// TypeTotal is the emissions of one activity type.
type TypeTotal struct {
	ActivityType string  `json:"activity_type"`
	Entries      int     `json:"entries"`
	Value        float64 `json:"value"`
	Factor       float64 `json:"factor"`
	Known        bool    `json:"known"`
	EmissionsKg  float64 `json:"emissions_kg"`
}

// Breakdown groups entries by activity type, sorted by type.
func Breakdown(entries []*model.ActivityLog, table FactorTable) []TypeTotal {
	byType := make(map[string]*TypeTotal)
	for _, entry := range entries {
		tt, ok := byType[entry.ActivityType]
		if !ok {
			factor, known := table.Lookup(entry.ActivityType)
			tt = &TypeTotal{ActivityType: entry.ActivityType, Factor: factor, Known: known}
			byType[entry.ActivityType] = tt
		}
		tt.Entries++
		tt.Value += entry.Value
		tt.EmissionsKg += entry.Value * tt.Factor
	}

	totals := make([]TypeTotal, 0, len(byType))
	for _, tt := range byType {
		totals = append(totals, *tt)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].ActivityType < totals[j].ActivityType
	})
	return totals
}

// Aggregator computes a user's cumulative emissions.
type Aggregator struct {
	activities ActivityLister
	factors    FactorSource
}

func NewAggregator(activities ActivityLister, factors FactorSource) *Aggregator {
	return &Aggregator{activities: activities, factors: factors}
}

// Total returns Σ value × factor over all of the user's activity log entries.
func (a *Aggregator) Total(userID string) (float64, error) {
	entries, table, err := a.load(userID)
	if err != nil {
		return 0, err
	}
	return Sum(entries, table), nil
}

// Breakdown returns the per-type totals that make up Total.
func (a *Aggregator) Breakdown(userID string) ([]TypeTotal, error) {
	entries, table, err := a.load(userID)
	if err != nil {
		return nil, err
	}
	return Breakdown(entries, table), nil
}

func (a *Aggregator) load(userID string) ([]*model.ActivityLog, FactorTable, error) {
	entries, err := a.activities.Activities(userID)
	if err != nil {
		return nil, FactorTable{}, fmt.Errorf("failed to list activities: %w", err)
	}

	table, err := a.factors.Table()
	if err != nil {
		return nil, FactorTable{}, err
	}
	return entries, table, nil
}
