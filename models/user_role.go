package models

import (
	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

// UserRole maps a user to exactly one application role. Roles are assigned at
// registration (students and faculty) or by seeding (admin) and never change
// through the API.
type UserRole struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Role   string `gorm:"type:varchar(16);not null" json:"role"`
}

// HasRole reports whether the user holds the given role. Policy checks that
// must not trust token claims alone (admin-only mutations) go through here.
func HasRole(db *gorm.DB, userID uint, role string) (bool, error) {
	var count int64
	err := db.Model(&UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
