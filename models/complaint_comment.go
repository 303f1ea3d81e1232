package models

import (
	"time"
)

// ComplaintComment is an append-only discussion entry on a complaint, visible
// to every party who can see the complaint itself.
type ComplaintComment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ComplaintID string `gorm:"type:uuid;not null;index" json:"complaint_id"`
	UserID      uint   `gorm:"not null" json:"user_id"`
	Comment     string `gorm:"type:text;not null" json:"comment"`
}
