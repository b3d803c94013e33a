package model

import (
	"time"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	ProfileInfo  *string   `db:"profile_info" json:"profile_info,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
