package model

import (
	"time"
)

type Report struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Summary     string    `db:"report_data" json:"report_data"`
	GeneratedAt time.Time `db:"generated_date" json:"generated_date"`
	// ArchiveKey is the object storage key of the rendered document, empty when not archived.
	ArchiveKey string `db:"archive_key" json:"archive_key,omitempty"`
}
