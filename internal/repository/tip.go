package repository

import (
	"database/sql"

	"github.com/footprint-app/footprint/internal/model"
	"github.com/jmoiron/sqlx"
)

type TipRepository interface {
	Create(tip *model.Tip) error
	ByID(userID, tipID string) (*model.Tip, error)
	Tips(userID string) ([]*model.Tip, error)
	Delete(userID, tipID string) error
}

type tipRepository struct {
	db *sqlx.DB
}

func NewTipRepository(db *sqlx.DB) TipRepository {
	return &tipRepository{db: db}
}

// Create inserts a single tip outside of any transaction.
func (r *tipRepository) Create(tip *model.Tip) error {
	query := `INSERT INTO tips (id, user_id, tip_text, category, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(query, tip.ID, tip.UserID, tip.Text, tip.Category, tip.CreatedAt)
	return err
}

func (r *tipRepository) ByID(userID, tipID string) (*model.Tip, error) {
	tip := &model.Tip{}
	query := `SELECT * FROM tips WHERE id = $1 AND user_id = $2`

	err := r.db.Get(tip, query, tipID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrTipNotFound
	}
	if err != nil {
		return nil, err
	}

	return tip, nil
}

func (r *tipRepository) Tips(userID string) ([]*model.Tip, error) {
	tips := []*model.Tip{}
	query := `SELECT * FROM tips WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&tips, query, userID)
	if err != nil {
		return nil, err
	}

	return tips, nil
}

func (r *tipRepository) Delete(userID, tipID string) error {
	result, err := r.db.Exec(`DELETE FROM tips WHERE id = $1 AND user_id = $2`, tipID, userID)
	if err != nil {
		return err
	}

	return requireRow(result, ErrTipNotFound)
}
