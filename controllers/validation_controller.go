package controllers

import (
	"net/http"

	"github.com/campus-voice/api-go/complaints"
	"github.com/campus-voice/api-go/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ValidationController struct {
	DB *gorm.DB
}

func NewValidationController(db *gorm.DB) *ValidationController {
	return &ValidationController{DB: db}
}

// ListDepartments returns the fixed department list. Registration forms and
// the admin assignment dialog both populate from here.
func (vc *ValidationController) ListDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: complaints.Departments})
}

// ValidateEmail lets the registration form check availability before submit.
func (vc *ValidationController) ValidateEmail(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	result := vc.DB.Where("email = ?", email).First(&user)

	if result.Error == nil {
		c.JSON(http.StatusOK, gin.H{"exists": true})
	} else if result.Error == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"exists": false})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email"})
	}
}
