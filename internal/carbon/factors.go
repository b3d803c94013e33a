package carbon

import (
	"fmt"
	"sort"

	"github.com/footprint-app/footprint/internal/model"
)

// FactorTable maps an activity type to kg CO2e per reported unit.
// A FactorTable is immutable once built.
type FactorTable struct {
	factors map[string]float64
}

// NewFactorTable copies factors into a new table.
func NewFactorTable(factors map[string]float64) FactorTable {
	m := make(map[string]float64, len(factors))
	for k, v := range factors {
		m[k] = v
	}
	return FactorTable{factors: m}
}

// DefaultEmissionFactors is the built-in aggregation table.
func DefaultEmissionFactors() FactorTable {
	return NewFactorTable(map[string]float64{
		model.ActivityCarTravel:                 0.21,
		model.ActivityPublicTransport:           0.1,
		model.ActivityElectricityUsage:          0.5,
		model.ActivityNaturalGasUsage:           2.2,
		model.ActivityWasteGeneration:           0.3,
		model.ActivityWaterUsage:                0.001,
		model.ActivityAirTravel:                 0.25,
		model.ActivityFoodConsumptionMeat:       27,
		model.ActivityFoodConsumptionVegetables: 2,
		model.ActivityClothingPurchases:         14,
	})
}

// Factor returns the factor for activityType. Unknown types have factor 0
// and therefore contribute nothing to a total.
func (t FactorTable) Factor(activityType string) float64 {
	f, ok := t.factors[activityType]
	if !ok {
		return 0
	}
	return f
}

// Lookup reports the factor and whether the type is known.
func (t FactorTable) Lookup(activityType string) (float64, bool) {
	f, ok := t.factors[activityType]
	return f, ok
}

// Overlay returns a new table with other's entries replacing t's.
func (t FactorTable) Overlay(other map[string]float64) FactorTable {
	m := make(map[string]float64, len(t.factors)+len(other))
	for k, v := range t.factors {
		m[k] = v
	}
	for k, v := range other {
		m[k] = v
	}
	return FactorTable{factors: m}
}

// Types returns the known activity types in sorted order.
func (t FactorTable) Types() []string {
	types := make([]string, 0, len(t.factors))
	for k := range t.factors {
		types = append(types, k)
	}
	sort.Strings(types)
	return types
}

func (t FactorTable) Len() int {
	return len(t.factors)
}

// FactorSource supplies the table used for one aggregation.
type FactorSource interface {
	Table() (FactorTable, error)
}

// StaticFactors always yields the same table.
type StaticFactors struct {
	Base FactorTable
}

func (s StaticFactors) Table() (FactorTable, error) {
	return s.Base, nil
}

// OverlayFactors reads persisted overrides on every call and lays them over
// Base. Later rows for the same activity type win.
type OverlayFactors struct {
	Base  FactorTable
	Store FactorStore
}

func (s OverlayFactors) Table() (FactorTable, error) {
	rows, err := s.Store.Factors()
	if err != nil {
		return FactorTable{}, fmt.Errorf("failed to load emission factors: %w", err)
	}

	overrides := make(map[string]float64, len(rows))
	for _, row := range rows {
		overrides[row.ActivityType] = row.Factor
	}
	return s.Base.Overlay(overrides), nil
}
