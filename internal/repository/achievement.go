package repository

import (
	"github.com/footprint-app/footprint/internal/model"
	"github.com/jmoiron/sqlx"
)

type AchievementRepository interface {
	Create(achievement *model.Achievement) error
	Achievements(userID string) ([]*model.Achievement, error)
}

type achievementRepository struct {
	db *sqlx.DB
}

func NewAchievementRepository(db *sqlx.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(achievement *model.Achievement) error {
	query := `INSERT INTO achievements (id, user_id, achievement_type, date_awarded) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(query, achievement.ID, achievement.UserID, achievement.Type, achievement.AwardedAt)
	return err
}

func (r *achievementRepository) Achievements(userID string) ([]*model.Achievement, error) {
	achievements := []*model.Achievement{}
	query := `SELECT * FROM achievements WHERE user_id = $1 ORDER BY date_awarded DESC`

	err := r.db.Select(&achievements, query, userID)
	if err != nil {
		return nil, err
	}

	return achievements, nil
}
