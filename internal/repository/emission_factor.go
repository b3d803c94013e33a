package repository

import (
	"database/sql"

	"github.com/footprint-app/footprint/internal/model"
	"github.com/jmoiron/sqlx"
)

type EmissionFactorRepository interface {
	Create(factor *model.EmissionFactor) error
	ByID(id string) (*model.EmissionFactor, error)
	// Factors lists all rows, oldest first.
	Factors() ([]*model.EmissionFactor, error)
	Delete(id string) error
}

type emissionFactorRepository struct {
	db *sqlx.DB
}

func NewEmissionFactorRepository(db *sqlx.DB) EmissionFactorRepository {
	return &emissionFactorRepository{db: db}
}

func (r *emissionFactorRepository) Create(factor *model.EmissionFactor) error {
	query := `INSERT INTO emission_factors (id, activity_type, emission_factor, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(query, factor.ID, factor.ActivityType, factor.Factor, factor.CreatedAt)
	return err
}

func (r *emissionFactorRepository) ByID(id string) (*model.EmissionFactor, error) {
	factor := &model.EmissionFactor{}

	err := r.db.Get(factor, `SELECT * FROM emission_factors WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrEmissionFactorNotFound
	}
	if err != nil {
		return nil, err
	}

	return factor, nil
}

func (r *emissionFactorRepository) Factors() ([]*model.EmissionFactor, error) {
	factors := []*model.EmissionFactor{}

	err := r.db.Select(&factors, `SELECT * FROM emission_factors ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}

	return factors, nil
}

func (r *emissionFactorRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM emission_factors WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return requireRow(result, ErrEmissionFactorNotFound)
}
