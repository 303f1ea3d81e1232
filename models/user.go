package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	Email    string  `gorm:"unique;not null" json:"email"`
	Password *string `gorm:"type:text" json:"-"` // nil for Google-only accounts

	GoogleID   *string `gorm:"uniqueIndex" json:"-"`
	Provider   string  `gorm:"default:'email'" json:"provider"`
	ProviderID string  `json:"-"`

	Profile       Profile        `json:"profile" gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
