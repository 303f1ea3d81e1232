package controllers

import (
	"net/http"

	"github.com/campus-voice/api-go/models"
	"github.com/campus-voice/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// ListNotifications returns the caller's notifications, newest first.
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	user := utils.GetUser(c)

	var notifications []models.Notification
	if err := nc.DB.Where("user_id = ?", user.UserID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var unread int64
	nc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", user.UserID, false).
		Count(&unread)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    notifications,
		Meta:    gin.H{"unread": unread},
	})
}

// MarkRead flips the read flag on one of the caller's notifications. The
// read flag is the only mutable field.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	user := utils.GetUser(c)

	var notification models.Notification
	if err := nc.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.UserID).
		First(&notification).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if err := nc.DB.Model(&notification).Update("read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true})
}

// MarkAllRead flips the read flag on everything the caller has.
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	user := utils.GetUser(c)

	if err := nc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", user.UserID, false).
		Update("read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true})
}
