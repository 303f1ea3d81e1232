package models

import (
	"time"
)

// Profile holds the directory record shown alongside a user's complaints and
// comments. Department is only meaningful for faculty accounts.
type Profile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID     uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
