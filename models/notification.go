package models

import (
	"time"
)

const (
	NotificationTypeAssignment = "assignment"
	NotificationTypeStatus     = "status_change"
	NotificationTypeComment    = "comment"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID      uint    `gorm:"not null;index" json:"user_id"`
	Message     string  `gorm:"not null" json:"message"`
	Type        string  `gorm:"not null" json:"type"`
	ComplaintID *string `gorm:"type:uuid" json:"complaint_id"`
	Read        bool    `gorm:"default:false" json:"read"`
}
