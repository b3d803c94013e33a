package repository

import (
	"database/sql"

	"github.com/footprint-app/footprint/internal/model"
	"github.com/jmoiron/sqlx"
)

type ActivityLogRepository interface {
	Create(entry *model.ActivityLog) error
	ByID(userID, id string) (*model.ActivityLog, error)
	// Activities lists a user's entries in chronological order.
	Activities(userID string) ([]*model.ActivityLog, error)
	Update(entry *model.ActivityLog) error
	Delete(userID, id string) error
}

type activityLogRepository struct {
	db *sqlx.DB
}

func NewActivityLogRepository(db *sqlx.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(entry *model.ActivityLog) error {
	query := `INSERT INTO activity_logs (id, user_id, activity_type, activity_value, date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.UserID,
		entry.ActivityType,
		entry.Value,
		entry.Date,
		entry.CreatedAt,
	)

	return err
}

func (r *activityLogRepository) ByID(userID, id string) (*model.ActivityLog, error) {
	entry := &model.ActivityLog{}
	query := `SELECT * FROM activity_logs WHERE id = $1 AND user_id = $2`

	err := r.db.Get(entry, query, id, userID)
	if err == sql.ErrNoRows {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *activityLogRepository) Activities(userID string) ([]*model.ActivityLog, error) {
	entries := []*model.ActivityLog{}
	query := `SELECT * FROM activity_logs WHERE user_id = $1 ORDER BY date ASC, created_at ASC`

	err := r.db.Select(&entries, query, userID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *activityLogRepository) Update(entry *model.ActivityLog) error {
	query := `UPDATE activity_logs
	          SET activity_type = $1, activity_value = $2, date = $3
	          WHERE id = $4 AND user_id = $5`

	result, err := r.db.Exec(query,
		entry.ActivityType,
		entry.Value,
		entry.Date,
		entry.ID,
		entry.UserID,
	)
	if err != nil {
		return err
	}

	return requireRow(result, ErrActivityNotFound)
}

func (r *activityLogRepository) Delete(userID, id string) error {
	query := `DELETE FROM activity_logs WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return err
	}

	return requireRow(result, ErrActivityNotFound)
}
