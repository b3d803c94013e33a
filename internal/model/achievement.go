package model

import (
	"time"
)

const (
	AchievementGoalAchieved = "goal_achieved"
)

type Achievement struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Type      string    `db:"achievement_type" json:"achievement_type"`
	AwardedAt time.Time `db:"date_awarded" json:"date_awarded"`
}
