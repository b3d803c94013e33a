package model

import (
	"time"
)

// EmissionFactor is a persisted per-deployment factor for one activity type.
type EmissionFactor struct {
	ID           string    `db:"id" json:"id"`
	ActivityType string    `db:"activity_type" json:"activity_type"`
	Factor       float64   `db:"emission_factor" json:"emission_factor"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
