package complaints

import (
	"github.com/campus-voice/api-go/models"
	"gorm.io/gorm"
)

// LoadActor resolves the caller's role and department from the store rather
// than trusting token claims. Role comes from user_roles (the has_role
// check); department from the caller's profile.
func LoadActor(db *gorm.DB, userID uint) (Actor, error) {
	var userRole models.UserRole
	if err := db.Where("user_id = ?", userID).First(&userRole).Error; err != nil {
		return Actor{}, err
	}

	actor := Actor{UserID: userID, Role: userRole.Role}

	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		actor.Department = profile.Department
	}

	return actor, nil
}
