package repository

import (
	"database/sql"

	"github.com/footprint-app/footprint/internal/model"
	"github.com/jmoiron/sqlx"
)

type ReportRepository interface {
	Create(report *model.Report) error
	ByID(userID, reportID string) (*model.Report, error)
	Reports(userID string) ([]*model.Report, error)
}

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *model.Report) error {
	query := `INSERT INTO reports (id, user_id, report_data, generated_date, archive_key)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		report.ID,
		report.UserID,
		report.Summary,
		report.GeneratedAt,
		report.ArchiveKey,
	)

	return err
}

func (r *reportRepository) ByID(userID, reportID string) (*model.Report, error) {
	report := &model.Report{}
	query := `SELECT * FROM reports WHERE id = $1 AND user_id = $2`

	err := r.db.Get(report, query, reportID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (r *reportRepository) Reports(userID string) ([]*model.Report, error) {
	reports := []*model.Report{}
	query := `SELECT * FROM reports WHERE user_id = $1 ORDER BY generated_date DESC`

	err := r.db.Select(&reports, query, userID)
	if err != nil {
		return nil, err
	}

	return reports, nil
}
