package carbon

import "github.com/footprint-app/footprint/internal/model"

// Rule is the classifier configuration for one activity type.
// A nil Benchmark means the activity never triggers a tip.
type Rule struct {
	Factor    float64
	Benchmark *float64
	Tip       string
	Category  string
}

// RuleTable maps activity types to classifier rules. Immutable once built.
type RuleTable struct {
	rules map[string]Rule
}

func NewRuleTable(rules map[string]Rule) RuleTable {
	m := make(map[string]Rule, len(rules))
	for k, v := range rules {
		m[k] = v
	}
	return RuleTable{rules: m}
}

func (t RuleTable) Rule(activityType string) (Rule, bool) {
	r, ok := t.rules[activityType]
	return r, ok
}

func (t RuleTable) Len() int {
	return len(t.rules)
}

func benchmark(v float64) *float64 {
	return &v
}

// DefaultTipRules is the built-in classifier table. It is maintained
// separately from DefaultEmissionFactors and intentionally differs from it
// (electricity_usage uses 0.475 here; public transport is keyed
// public_transportation).
func DefaultTipRules() RuleTable {
	return NewRuleTable(map[string]Rule{
		model.ActivityCarTravel: {
			Factor:    0.21,
			Benchmark: benchmark(100),
			Tip:       "Consider carpooling or using public transportation to reduce emissions.",
			Category:  "transportation",
		},
		model.ActivityPublicTransportation: {
			Factor:    0.1,
			Benchmark: benchmark(200),
			Tip:       "Check if you can reduce your public transportation usage by combining trips or choosing off-peak times.",
			Category:  "transportation",
		},
		model.ActivityElectricityUsage: {
			Factor:    0.475,
			Benchmark: benchmark(500),
			Tip:       "Reduce electricity consumption by using energy-efficient appliances and turning off lights when not in use.",
			Category:  "energy",
		},
		model.ActivityNaturalGasUsage: {
			Factor:    2.2,
			Benchmark: benchmark(100),
			Tip:       "Improve home insulation to reduce natural gas usage and lower your heating bills.",
			Category:  "energy",
		},
		model.ActivityWasteGeneration: {
			Factor:    0.3,
			Benchmark: benchmark(50),
			Tip:       "Recycle and compost to minimize waste and reduce emissions.",
			Category:  "waste",
		},
		model.ActivityWaterUsage: {
			Factor:    0.001,
			Benchmark: benchmark(10000),
			Tip:       "Reduce water usage by fixing leaks, using water-efficient fixtures, and taking shorter showers.",
			Category:  "water",
		},
		model.ActivityAirTravel: {
			Factor:    0.25,
			Benchmark: benchmark(1000),
			Tip:       "Limit air travel where possible and consider alternatives like video conferencing.",
			Category:  "travel",
		},
		model.ActivityFoodConsumptionMeat: {
			Factor:    27,
			Benchmark: benchmark(5),
			Tip:       "Reduce meat consumption and consider plant-based alternatives to lower your carbon footprint.",
			Category:  "food",
		},
		model.ActivityFoodConsumptionVegetables: {
			Factor:   2,
			Tip:      "Continue consuming a variety of vegetables to maintain a low-carbon diet.",
			Category: "food",
		},
		model.ActivityClothingPurchases: {
			Factor:    14,
			Benchmark: benchmark(5),
			Tip:       "Buy fewer, higher-quality items and consider second-hand clothing to reduce emissions.",
			Category:  "clothing",
		},
	})
}
