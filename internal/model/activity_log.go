package model

import (
	"time"
)

// Activity types with built-in emission factors. The set is open-ended:
// any other string is a valid activity type that currently carries no factor.
const (
	ActivityCarTravel                 = "car_travel"
	ActivityPublicTransport           = "public_transport"
	ActivityPublicTransportation      = "public_transportation"
	ActivityElectricityUsage          = "electricity_usage"
	ActivityNaturalGasUsage           = "natural_gas_usage"
	ActivityWasteGeneration           = "waste_generation"
	ActivityWaterUsage                = "water_usage"
	ActivityAirTravel                 = "air_travel"
	ActivityFoodConsumptionMeat       = "food_consumption_meat"
	ActivityFoodConsumptionVegetables = "food_consumption_vegetables"
	ActivityClothingPurchases         = "clothing_purchases"
)

type ActivityLog struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	ActivityType string    `db:"activity_type" json:"activity_type"`
	Value        float64   `db:"activity_value" json:"activity_value"`
	Date         time.Time `db:"date" json:"date"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ActivityLogPatch carries a partial update. Nil fields are left unchanged.
type ActivityLogPatch struct {
	ActivityType *string
	Value        *float64
	Date         *time.Time
}

// Apply merges the supplied fields into the entry.
func (p ActivityLogPatch) Apply(a *ActivityLog) {
	if p.ActivityType != nil {
		a.ActivityType = *p.ActivityType
	}
	if p.Value != nil {
		a.Value = *p.Value
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p ActivityLogPatch) IsEmpty() bool {
	return p.ActivityType == nil && p.Value == nil && p.Date == nil
}
