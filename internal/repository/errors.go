package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every per-entity not-found error.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound           = fmt.Errorf("user %w", ErrNotFound)
	ErrActivityNotFound       = fmt.Errorf("activity log %w", ErrNotFound)
	ErrEmissionFactorNotFound = fmt.Errorf("emission factor %w", ErrNotFound)
	ErrGoalNotFound           = fmt.Errorf("goal %w", ErrNotFound)
	ErrTipNotFound            = fmt.Errorf("tip %w", ErrNotFound)
	ErrReportNotFound         = fmt.Errorf("report %w", ErrNotFound)
)

var ErrDuplicateEmail = errors.New("email already exists")

// requireRow maps zero affected rows to notFound.
func requireRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return notFound
	}

	return nil
}
